package gateway_service

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"payments-gateway/domain/constants"
	"payments-gateway/domain/entities"
	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/domain/money"
	"payments-gateway/domain/repositories"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/errors"
	"payments-gateway/utils/gpooling"
	"payments-gateway/utils/helpers"
)

const defaultTimeout = time.Second * 30

type repoImpl struct {
	Config  configs.Gateway
	Logger  *zap.Logger
	Pool    gpooling.IPool
	Journal repositories.JournalRepository
	client  *http.Client
}

// NewGatewayService builds the gateway client. journal may be nil; exchanges
// are then only logged, not persisted.
func NewGatewayService(config configs.Gateway, logger *zap.Logger, pool gpooling.IPool, journal repositories.JournalRepository) *repoImpl {
	timeout := defaultTimeout
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}
	return &repoImpl{
		Config:  config,
		Logger:  logger,
		Pool:    pool,
		Journal: journal,
		client:  &http.Client{Timeout: timeout},
	}
}

func (r repoImpl) checkCredentials(c gw.Credentials) error {
	if c.ClientCode == "" || c.Username == "" || c.Password == "" || c.Guid == "" {
		return errors.Validation(constants.MsgErrCredentialsMissing)
	}
	return nil
}

func (r repoImpl) InitThreeDPayment(ctx context.Context, req *gw.ThreeDPaymentRequest) (*gw.InitializationResult, error) {
	if err := r.checkCredentials(req.Credentials); err != nil {
		return nil, err
	}
	if req.OrderId == "" || req.Amount == "" || req.TotalAmount == "" || req.Hash == "" || req.CardNumber == "" {
		return nil, errors.Validation("payment request is missing required fields")
	}

	envelope, err := encodeEnvelope(gw.RequestBody{ThreeDPayment: req})
	if err != nil {
		return nil, err
	}

	raw, err := r.post(ctx, constants.ActionThreeDPayment, envelope)
	r.journal(constants.OpInitPayment, req.OrderId, envelope, raw, err)
	if err != nil {
		return nil, err
	}

	body, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	result := body.ThreeDPaymentResult
	if result == nil {
		return nil, errors.MalformedResponse("response is missing the payment result element", nil)
	}
	if err := resultGate(result.ResultCode, result.ResultMessage); err != nil {
		return nil, err
	}

	redirect, err := redirectContent(result.RedirectUrl, result.HtmlContent)
	if err != nil {
		return nil, err
	}
	orderId := result.OrderId
	if orderId == "" {
		orderId = req.OrderId
	}
	return &gw.InitializationResult{
		OrderId:       orderId,
		TransactionId: result.TransactionId,
		ResultCode:    result.ResultCode,
		ResultMessage: result.ResultMessage,
		Redirect:      redirect,
	}, nil
}

func (r repoImpl) CompletePayment(ctx context.Context, req *gw.CompleteThreeDPaymentRequest) (*gw.CompletionResult, error) {
	if err := r.checkCredentials(req.Credentials); err != nil {
		return nil, err
	}
	if req.OrderId == "" {
		return nil, errors.Validation(constants.MsgErrOrderNotFound)
	}
	if req.VerificationToken == "" {
		return nil, errors.Validation(constants.MsgErrVerificationMissing)
	}

	envelope, err := encodeEnvelope(gw.RequestBody{CompleteThreeDPayment: req})
	if err != nil {
		return nil, err
	}

	raw, err := r.post(ctx, constants.ActionCompleteThreeDPayment, envelope)
	r.journal(constants.OpCompletePayment, req.OrderId, envelope, raw, err)
	if err != nil {
		return nil, err
	}

	body, err := decodeEnvelope(raw)
	if err != nil {
		return nil, err
	}
	result := body.CompleteThreeDPaymentResult
	if result == nil {
		return nil, errors.MalformedResponse("response is missing the completion result element", nil)
	}
	if err := resultGate(result.ResultCode, result.ResultMessage); err != nil {
		return nil, err
	}

	settled, err := money.Parse(result.Amount)
	if err != nil {
		return nil, errors.MalformedResponse("settled amount is unparseable", err)
	}
	orderId := result.OrderId
	if orderId == "" {
		orderId = req.OrderId
	}
	return &gw.CompletionResult{
		OrderId:       orderId,
		TransactionId: result.TransactionId,
		ReceiptId:     result.ReceiptId,
		SettledAmount: settled,
		ResultCode:    result.ResultCode,
		ResultMessage: result.ResultMessage,
	}, nil
}

func (r repoImpl) SaveCard(ctx context.Context, req *gw.SaveCardRequest) (string, error) {
	if err := r.checkCredentials(req.Credentials); err != nil {
		return "", err
	}
	if req.CardNumber == "" {
		return "", errors.Validation(constants.MsgErrCardNumberInvalid)
	}

	envelope, err := encodeEnvelope(gw.RequestBody{SaveCard: req})
	if err != nil {
		return "", err
	}

	raw, err := r.post(ctx, constants.ActionSaveCard, envelope)
	r.journal(constants.OpSaveCard, "", envelope, raw, err)
	if err != nil {
		return "", err
	}

	body, err := decodeEnvelope(raw)
	if err != nil {
		return "", err
	}
	result := body.SaveCardResult
	if result == nil {
		return "", errors.MalformedResponse("response is missing the save-card result element", nil)
	}
	if err := resultGate(result.ResultCode, result.ResultMessage); err != nil {
		return "", err
	}
	if result.CardToken == "" {
		return "", errors.MalformedResponse("save-card result carries no token", nil)
	}
	return result.CardToken, nil
}

func (r repoImpl) DeleteCard(ctx context.Context, req *gw.DeleteCardRequest) error {
	if err := r.checkCredentials(req.Credentials); err != nil {
		return err
	}
	if req.CardToken == "" {
		return errors.Validation(constants.MsgErrCardTokenEmpty)
	}

	envelope, err := encodeEnvelope(gw.RequestBody{DeleteCard: req})
	if err != nil {
		return err
	}

	raw, err := r.post(ctx, constants.ActionDeleteCard, envelope)
	r.journal(constants.OpDeleteCard, "", envelope, raw, err)
	if err != nil {
		return err
	}

	body, err := decodeEnvelope(raw)
	if err != nil {
		return err
	}
	result := body.DeleteCardResult
	if result == nil {
		return errors.MalformedResponse("response is missing the delete-card result element", nil)
	}
	return resultGate(result.ResultCode, result.ResultMessage)
}

// journal persists the masked exchange off the payment path.
func (r repoImpl) journal(operation, orderId string, request, response []byte, opErr error) {
	if r.Journal == nil {
		return
	}
	record := &entities.ExchangeRecord{
		OrderId:      orderId,
		Operation:    operation,
		RequestBody:  maskBody(string(request)),
		ResponseBody: maskBody(string(response)),
		CreatedTime:  helpers.GetCurrentTime(),
	}
	if opErr != nil {
		record.Err = opErr.Error()
	}
	r.Pool.Submit(func() {
		if err := r.Journal.Write(helpers.ContextWithTimeOut(), record); err != nil {
			r.Logger.Error("journal write failed: " + err.Error())
		}
	})
}
