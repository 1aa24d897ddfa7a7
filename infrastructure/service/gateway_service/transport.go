package gateway_service

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"net/http"

	"go.uber.org/zap/zapcore"

	"payments-gateway/domain/constants"
	"payments-gateway/utils/errors"
)

// post issues the single HTTP exchange every operation rides on. Anything
// that keeps a well-formed response body from coming back — connection
// failure, timeout, non-2xx status — surfaces as a Transport error. No
// retries here; retrying a payment blindly risks a duplicate charge.
func (r repoImpl) post(ctx context.Context, action string, envelope []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.Config.Uri, bytes.NewReader(envelope))
	if err != nil {
		return nil, errors.Transport("building gateway request", err)
	}
	req.Header.Set("Content-Type", constants.ContentTypeXML)
	req.Header.Set("SOAPAction", action)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Transport("gateway unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Transport("reading gateway response", err)
	}

	r.Logger.With(zapcore.Field{
		Key:    "uri",
		Type:   zapcore.StringType,
		String: r.Config.Uri,
	}).With(zapcore.Field{
		Key:    "action",
		Type:   zapcore.StringType,
		String: action,
	}).With(zapcore.Field{
		Key:    "request",
		Type:   zapcore.StringType,
		String: maskBody(string(envelope)),
	}).With(zapcore.Field{
		Key:    "response",
		Type:   zapcore.StringType,
		String: string(raw),
	}).Info("gateway_exchange")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.Logger.Error("GATEWAY SERVER ERROR: " + string(raw))
		return nil, errors.Transport(fmt.Sprintf("gateway returned HTTP %v", resp.StatusCode), nil)
	}

	return raw, nil
}
