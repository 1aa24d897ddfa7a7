package crypt

import (
	"crypto/sha1"
	"encoding/base64"

	"github.com/spf13/cast"
)

// TransactionHash computes the integrity hash the gateway verifies on every
// payment initialization: SHA-1 over the UTF-8 concatenation of
// clientCode + guid + installment + amount + totalAmount + orderId,
// base64-encoded. The two amount fields must already be in the gateway's
// comma-decimal rendering. Pure function; identical inputs always produce
// the identical hash.
func TransactionHash(clientCode, guid string, installment int, amount, totalAmount, orderId string) string {
	h := sha1.New()
	h.Write([]byte(clientCode + guid + cast.ToString(installment) + amount + totalAmount + orderId))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
