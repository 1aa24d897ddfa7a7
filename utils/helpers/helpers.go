package helpers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jakehl/goid"
)

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

func ContextWithTimeOut() context.Context {
	ctx, _ := context.WithTimeout(context.Background(), time.Second*10)
	return ctx
}

// MaskCard keeps the first six and last four digits of a card number, the
// form permitted in logs and journals.
func MaskCard(number string) string {
	if len(number) < 11 {
		return strings.Repeat("*", len(number))
	}
	return number[:6] + strings.Repeat("*", len(number)-10) + number[len(number)-4:]
}

// MaskSecret shortens an identifier for log output.
func MaskSecret(some string) string {
	if len(some) > 5 {
		return some[0:5] + "***"
	}
	if some == "" {
		return "?"
	}
	return "***"
}
