package application

import (
	"context"

	"go.uber.org/zap"

	"payments-gateway/domain/constants"
	"payments-gateway/domain/entities"
	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/utils/errors"
	"payments-gateway/utils/gen_ids"
	"payments-gateway/utils/helpers"
)

// SaveCard tokenizes a card at the gateway and stores the token with masked
// metadata. The PAN and CVC are gone once this returns.
func (usecase PaymentApplication) SaveCard(ctx context.Context, details entities.CardDetails) (*entities.SavedCard, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	gatewayConf := usecase.Config.Gateway
	token, err := usecase.GatewayRepository.SaveCard(ctx, &gw.SaveCardRequest{
		Credentials: gw.Credentials{
			ClientCode: gatewayConf.ClientCode,
			Username:   gatewayConf.Username,
			Password:   gatewayConf.Password,
			Guid:       gatewayConf.Guid,
		},
		CardHolder:  details.CardHolder,
		CardNumber:  details.CardNumber,
		ExpireMonth: details.ExpireMonth,
		ExpireYear:  details.ExpireYear,
		Cvc:         details.Cvc,
		OwnerRef:    gen_ids.GetIdCardRef(),
	})
	if err != nil {
		usecase.alertOnMalformed(constants.OpSaveCard, "", 0, err)
		return nil, err
	}

	card := &entities.SavedCard{
		Token:       token,
		OwnerId:     details.OwnerId,
		MaskedCard:  helpers.MaskCard(details.CardNumber),
		CardBrand:   entities.CardBrandOf(details.CardNumber),
		CardHolder:  details.CardHolder,
		ExpireMonth: details.ExpireMonth,
		ExpireYear:  details.ExpireYear,
	}
	if _, err := usecase.CardRepository.Save(ctx, card); err != nil {
		usecase.Logger.Error("saved card persist failed", zap.String("token", helpers.MaskSecret(token)), zap.Error(err))
		return nil, err
	}
	return card, nil
}

// DeleteCard removes a vault token. The gateway does not make this
// idempotent: deleting an already-deleted token comes back GatewayRejected,
// and callers are expected to treat that as a non-fatal outcome.
func (usecase PaymentApplication) DeleteCard(ctx context.Context, token string) error {
	if token == "" {
		return errors.Validation(constants.MsgErrCardTokenEmpty)
	}

	gatewayConf := usecase.Config.Gateway
	err := usecase.GatewayRepository.DeleteCard(ctx, &gw.DeleteCardRequest{
		Credentials: gw.Credentials{
			ClientCode: gatewayConf.ClientCode,
			Username:   gatewayConf.Username,
			Password:   gatewayConf.Password,
			Guid:       gatewayConf.Guid,
		},
		CardToken: token,
	})
	if err != nil {
		usecase.alertOnMalformed(constants.OpDeleteCard, "", 0, err)
		return err
	}

	if err := usecase.CardRepository.DeleteByToken(ctx, token); err != nil {
		usecase.Logger.Error("saved card delete failed", zap.String("token", helpers.MaskSecret(token)), zap.Error(err))
		return err
	}
	return nil
}

// ListCards lists the stored tokens of one owner.
func (usecase PaymentApplication) ListCards(ctx context.Context, ownerId string) ([]*entities.SavedCard, error) {
	if ownerId == "" {
		return nil, errors.Validation(constants.MsgErrOwnerEmpty)
	}
	return usecase.CardRepository.FindByOwner(ctx, ownerId)
}
