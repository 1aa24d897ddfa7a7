package application

import (
	"go.uber.org/zap"

	"payments-gateway/utils/errors"
	"payments-gateway/utils/telegram"
)

// alertOnMalformed pushes a contract-violation alert to the ops channel.
// Malformed responses mean either the gateway changed its wire format or our
// parser is wrong; both need a human. Other error kinds only get logged by
// their call sites.
func (usecase PaymentApplication) alertOnMalformed(operation, orderId string, amountMinor int64, err error) {
	if !errors.IsKind(err, errors.KindMalformedResponse) {
		return
	}

	usecase.Logger.Error("gateway contract violation",
		zap.String("operation", operation),
		zap.String("order_id", orderId),
		zap.Error(err),
	)

	alert := usecase.Config.Alert
	if alert.TelegramToken == "" {
		return
	}

	message := telegram.MalformedResponseAlert(operation, orderId, amountMinor, err.Error())
	usecase.IPool.Submit(func() {
		if sendErr := telegram.SendTelegram(alert.TelegramToken, message, alert.TelegramChannelId); sendErr != nil {
			usecase.Logger.Error("telegram alert failed", zap.Error(sendErr))
		}
	})
}
