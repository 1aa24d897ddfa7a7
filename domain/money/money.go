package money

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/leekchan/accounting"

	"payments-gateway/utils/errors"
)

// Amounts travel through the system as int64 minor units (cents). The gateway
// wire format is a comma-decimal string with exactly two fractional digits and
// no thousand separators, e.g. 12345 -> "123,45".

// Format renders minor units in the gateway's comma-decimal form.
// Negative amounts never reach the wire.
func Format(minor int64) (string, error) {
	if minor < 0 {
		return "", errors.Validationf("amount must not be negative: %d", minor)
	}
	return accounting.FormatNumber(float64(minor)/100, 2, "", ","), nil
}

var amountRe = regexp.MustCompile(`^[0-9]+,[0-9]{2}$`)

// Parse is the inverse of Format. It accepts only the strict `whole,dd`
// rendering the gateway emits; anything else is rejected. The digit-only
// check matters because strconv tolerates a sign inside the fraction.
func Parse(s string) (int64, error) {
	if !amountRe.MatchString(s) {
		return 0, errors.Validationf("malformed amount %q", s)
	}
	parts := strings.Split(s, ",")
	whole, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, errors.Validationf("malformed amount %q", s)
	}
	frac, _ := strconv.ParseInt(parts[1], 10, 64)
	return whole*100 + frac, nil
}
