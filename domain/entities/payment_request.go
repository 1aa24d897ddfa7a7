package entities

import (
	"regexp"
	"strconv"
	"time"

	"payments-gateway/domain/constants"
	"payments-gateway/utils/errors"
)

var (
	cardNumberRe  = regexp.MustCompile(`^[0-9]{15,16}$`)
	expireMonthRe = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	expireYearRe  = regexp.MustCompile(`^[0-9]{4}$`)
	cvcRe         = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// PaymentRequest carries the caller-supplied parameters of one payment
// attempt. Amount is in minor units, before commission.
type PaymentRequest struct {
	Amount      int64
	Installment int
	CardHolder  string
	CardNumber  string
	ExpireMonth string
	ExpireYear  string
	Cvc         string
	ClientIP    string
	UserRef     string
	Description string
}

// Validate checks business invariants before anything touches the network.
func (r PaymentRequest) Validate() error {
	if r.Amount <= 0 {
		return errors.Validation(constants.MsgErrAmountNotPositive)
	}
	if r.Installment < 1 || r.Installment > 12 {
		return errors.Validation(constants.MsgErrInstallmentRange)
	}
	if r.CardHolder == "" {
		return errors.Validation(constants.MsgErrCardHolderEmpty)
	}
	return validateCardFields(r.CardNumber, r.ExpireMonth, r.ExpireYear, r.Cvc)
}

func validateCardFields(number, month, year, cvc string) error {
	if !cardNumberRe.MatchString(number) {
		return errors.Validation(constants.MsgErrCardNumberInvalid)
	}
	if !expireMonthRe.MatchString(month) {
		return errors.Validation(constants.MsgErrExpireMonthInvalid)
	}
	if !expireYearRe.MatchString(year) {
		return errors.Validation(constants.MsgErrExpireYearInvalid)
	}
	if !cvcRe.MatchString(cvc) {
		return errors.Validation(constants.MsgErrCvcInvalid)
	}
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	now := time.Now().UTC()
	if y < now.Year() || (y == now.Year() && m < int(now.Month())) {
		return errors.Validation(constants.MsgErrCardExpired)
	}
	return nil
}
