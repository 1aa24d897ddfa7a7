package entities

import (
	"strconv"
	"strings"
	"time"

	"payments-gateway/domain/constants"
	"payments-gateway/utils/errors"
)

const (
	BrandVisa       = "VISA"
	BrandMastercard = "MASTERCARD"
	BrandAmex       = "AMEX"
	BrandUnknown    = "UNKNOWN"
)

// CardBrandOf derives the scheme from the PAN prefix. Amex is the only
// scheme the gateway accepts with a 15-digit PAN.
func CardBrandOf(number string) string {
	if strings.HasPrefix(number, "34") || strings.HasPrefix(number, "37") {
		return BrandAmex
	}
	if strings.HasPrefix(number, "4") {
		return BrandVisa
	}
	if len(number) >= 2 {
		if p, err := strconv.Atoi(number[:2]); err == nil && p >= 51 && p <= 55 {
			return BrandMastercard
		}
	}
	if len(number) >= 4 {
		if p, err := strconv.Atoi(number[:4]); err == nil && p >= 2221 && p <= 2720 {
			return BrandMastercard
		}
	}
	return BrandUnknown
}

// CardDetails is the input to the card vault save operation.
type CardDetails struct {
	OwnerId     string
	CardHolder  string
	CardNumber  string
	ExpireMonth string
	ExpireYear  string
	Cvc         string
}

func (c CardDetails) Validate() error {
	if c.OwnerId == "" {
		return errors.Validation(constants.MsgErrOwnerEmpty)
	}
	if c.CardHolder == "" {
		return errors.Validation(constants.MsgErrCardHolderEmpty)
	}
	return validateCardFields(c.CardNumber, c.ExpireMonth, c.ExpireYear, c.Cvc)
}

// SavedCard is what the vault hands back: the gateway token plus masked
// metadata safe to show and persist. The PAN itself is never stored.
type SavedCard struct {
	Token       string    `bson:"token" json:"token"`
	OwnerId     string    `bson:"owner_id" json:"owner_id"`
	MaskedCard  string    `bson:"masked_card" json:"masked_card"`
	CardBrand   string    `bson:"card_brand" json:"card_brand"`
	CardHolder  string    `bson:"card_holder" json:"card_holder"`
	ExpireMonth string    `bson:"expire_month" json:"expire_month"`
	ExpireYear  string    `bson:"expire_year" json:"expire_year"`
	CreatedTime time.Time `bson:"created_time" json:"created_time"`
}
