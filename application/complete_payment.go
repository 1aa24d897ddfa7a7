package application

import (
	"context"

	"go.uber.org/zap"

	"payments-gateway/domain/constants"
	"payments-gateway/domain/entities"
	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/utils/errors"
)

// CompletePayment runs phase two after the bank's verification callback.
// The order id resumes the flow started by InitPayment; anything other than
// AwaitingVerification is rejected before the gateway is contacted.
//
// A gateway rejection is terminal. A transport or contract failure leaves
// the flow in AwaitingVerification: the outcome on the bank side is unknown
// and the caller may try completing again.
func (usecase PaymentApplication) CompletePayment(ctx context.Context, orderId, verificationToken string) (*gw.CompletionResult, error) {
	if orderId == "" {
		return nil, errors.Validation(constants.MsgErrOrderNotFound)
	}
	if verificationToken == "" {
		return nil, errors.Validation(constants.MsgErrVerificationMissing)
	}

	flow, err := usecase.FlowRepository.FindByOrderID(ctx, orderId)
	if err != nil || flow == nil {
		return nil, errors.Validation(constants.MsgErrOrderNotFound)
	}
	if !flow.Status.CanComplete() {
		return nil, errors.Validation(constants.MsgErrFlowNotCompletable)
	}

	flow.Status = entities.FlowCompleting
	if _, err := usecase.FlowRepository.Update(ctx, flow); err != nil {
		usecase.Logger.Error("flow snapshot update failed", zap.String("order_id", orderId), zap.Error(err))
		return nil, err
	}

	gatewayConf := usecase.Config.Gateway
	result, err := usecase.GatewayRepository.CompletePayment(ctx, &gw.CompleteThreeDPaymentRequest{
		Credentials: gw.Credentials{
			ClientCode: gatewayConf.ClientCode,
			Username:   gatewayConf.Username,
			Password:   gatewayConf.Password,
			Guid:       gatewayConf.Guid,
		},
		VerificationToken: verificationToken,
		TransactionId:     flow.TransactionId,
		OrderId:           orderId,
	})
	if err != nil {
		if errors.IsKind(err, errors.KindGatewayRejected) {
			flow.Status = entities.FlowFailed
			flow.FailReason = err.Error()
		} else {
			flow.Status = entities.FlowAwaitingVerification
		}
		usecase.FlowRepository.Update(ctx, flow)
		usecase.alertOnMalformed(constants.OpCompletePayment, orderId, flow.TotalAmount, err)
		return nil, err
	}

	flow.Status = entities.FlowSettled
	flow.ReceiptId = result.ReceiptId
	if _, err := usecase.FlowRepository.Update(ctx, flow); err != nil {
		usecase.Logger.Error("flow snapshot update failed", zap.String("order_id", orderId), zap.Error(err))
		return nil, err
	}

	return result, nil
}
