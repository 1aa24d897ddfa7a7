package application

import (
	"context"

	"go.uber.org/zap"

	"payments-gateway/domain/constants"
	"payments-gateway/domain/entities"
	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/domain/fees"
	"payments-gateway/domain/money"
	"payments-gateway/utils/crypt"
	"payments-gateway/utils/gen_ids"
	"payments-gateway/utils/helpers"
)

// InitPayment runs phase one of a 3-D Secure payment: validate, price the
// installment plan, sign, persist a flow snapshot and ask the gateway for
// redirect content. The returned order id is the key the completion phase
// resumes with.
func (usecase PaymentApplication) InitPayment(ctx context.Context, req entities.PaymentRequest) (*gw.InitializationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	total, err := fees.Total(req.Amount, req.Installment, usecase.Config.Commission.InstallmentRate)
	if err != nil {
		return nil, err
	}

	amountStr, err := money.Format(req.Amount)
	if err != nil {
		return nil, err
	}
	totalStr, err := money.Format(total)
	if err != nil {
		return nil, err
	}

	orderId := gen_ids.GetIdOrderId()
	gatewayConf := usecase.Config.Gateway

	flow := &entities.FlowEntity{
		OrderId:     orderId,
		UserRef:     req.UserRef,
		Amount:      req.Amount,
		TotalAmount: total,
		Installment: req.Installment,
		Status:      entities.FlowInitializing,
		MaskedCard:  helpers.MaskCard(req.CardNumber),
	}
	if _, err := usecase.FlowRepository.Create(ctx, flow); err != nil {
		usecase.Logger.Error("flow snapshot create failed", zap.String("order_id", orderId), zap.Error(err))
		return nil, err
	}

	request := &gw.ThreeDPaymentRequest{
		Credentials: gw.Credentials{
			ClientCode: gatewayConf.ClientCode,
			Username:   gatewayConf.Username,
			Password:   gatewayConf.Password,
			Guid:       gatewayConf.Guid,
		},
		CardHolder:   req.CardHolder,
		CardNumber:   req.CardNumber,
		ExpireMonth:  req.ExpireMonth,
		ExpireYear:   req.ExpireYear,
		Cvc:          req.Cvc,
		SuccessUrl:   gatewayConf.SuccessUrl,
		ErrorUrl:     gatewayConf.ErrorUrl,
		OrderId:      orderId,
		Installment:  req.Installment,
		Amount:       amountStr,
		TotalAmount:  totalStr,
		Hash:         crypt.TransactionHash(gatewayConf.ClientCode, gatewayConf.Guid, req.Installment, amountStr, totalStr, orderId),
		SecurityType: constants.SecurityType3D,
		ClientIP:     req.ClientIP,
		UserRef:      req.UserRef,
		Description:  req.Description,
	}

	result, err := usecase.GatewayRepository.InitThreeDPayment(ctx, request)
	if err != nil {
		flow.Status = entities.FlowFailed
		flow.FailReason = err.Error()
		usecase.FlowRepository.Update(ctx, flow)
		usecase.alertOnMalformed(constants.OpInitPayment, orderId, req.Amount, err)
		return nil, err
	}

	flow.Status = entities.FlowAwaitingVerification
	flow.TransactionId = result.TransactionId
	if _, err := usecase.FlowRepository.Update(ctx, flow); err != nil {
		usecase.Logger.Error("flow snapshot update failed", zap.String("order_id", orderId), zap.Error(err))
		return nil, err
	}

	return result, nil
}
