package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/dustin/go-humanize"
)

func SendTelegram(token, message string, channelId int64) error {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	_, err = bot.Send(tgbotapi.NewMessage(channelId, message))
	return err
}

// MalformedResponseAlert renders the ops message posted when the gateway
// returns something outside its wire contract.
func MalformedResponseAlert(operation, orderId string, amountMinor int64, cause string) string {
	return fmt.Sprintf(`
GATEWAY CONTRACT VIOLATION
Operation: %v
Order id: %v
Amount (minor units): %v
Cause: %v
`,
		operation,
		orderId,
		humanize.Comma(amountMinor),
		cause,
	)
}
