package gateway_service

import (
	"encoding/xml"
	"regexp"
	"strconv"
	"strings"

	"payments-gateway/domain/constants"
	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/utils/errors"
)

// encodeEnvelope wraps one operation element in the namespaced SOAP wrapper.
func encodeEnvelope(body gw.RequestBody) ([]byte, error) {
	env := gw.RequestEnvelope{
		XmlnsSoapenv: constants.SoapEnvelopeNS,
		XmlnsPay:     constants.GatewayNS,
		Body:         body,
	}
	out, err := xml.Marshal(env)
	if err != nil {
		return nil, errors.Validationf("encoding gateway request: %v", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// decodeEnvelope parses the raw response into the typed body. The per-op
// result pointer still has to be checked by the caller.
func decodeEnvelope(raw []byte) (*gw.ResponseBody, error) {
	env := gw.ResponseEnvelope{}
	if err := xml.Unmarshal(raw, &env); err != nil {
		return nil, errors.MalformedResponse("gateway response is not well-formed XML", err)
	}
	return &env.Body, nil
}

// resultGate enforces the result-code convention shared by every operation:
// the code must parse as an integer, and a negative value is an explicit
// rejection carrying the gateway's message.
func resultGate(code, message string) error {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return errors.MalformedResponse("non-numeric result code "+strconv.Quote(code), err)
	}
	if n < 0 {
		return errors.GatewayRejected(message, strings.TrimSpace(code))
	}
	return nil
}

// redirectContent picks the populated redirect branch. The gateway sends a
// URL or an inline HTML fragment; both empty means the response is unusable.
func redirectContent(url, markup string) (gw.RedirectContent, error) {
	url = strings.TrimSpace(url)
	if url != "" {
		return gw.UrlRedirect(url), nil
	}
	if strings.TrimSpace(markup) != "" {
		return gw.MarkupRedirect(markup), nil
	}
	return gw.RedirectContent{}, errors.MalformedResponse("response carries neither redirect url nor markup", nil)
}

var (
	panRe = regexp.MustCompile(`(?s)(CardNumber>)\s*([0-9]{6})[0-9]+([0-9]{4})\s*(</)`)
	cvcRe = regexp.MustCompile(`(?s)(Cvv>).*?(</)`)
)

// maskBody strips sensitive card data from an XML body before it is logged
// or journaled.
func maskBody(body string) string {
	body = panRe.ReplaceAllString(body, "${1}${2}******${3}${4}")
	body = cvcRe.ReplaceAllString(body, "${1}***${2}")
	return body
}
