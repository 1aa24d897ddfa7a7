package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payments-gateway/utils/errors"
)

func validRequest() PaymentRequest {
	return PaymentRequest{
		Amount:      10000,
		Installment: 1,
		CardHolder:  "JOHN DOE",
		CardNumber:  "4111111111111111",
		ExpireMonth: "12",
		ExpireYear:  "2031",
		Cvc:         "123",
		ClientIP:    "10.0.0.1",
	}
}

func TestPaymentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PaymentRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *PaymentRequest) {}},
		{name: "valid amex 15 digits", mutate: func(r *PaymentRequest) { r.CardNumber = "378282246310005"; r.Cvc = "1234" }},
		{name: "zero amount", mutate: func(r *PaymentRequest) { r.Amount = 0 }, wantErr: true},
		{name: "negative amount", mutate: func(r *PaymentRequest) { r.Amount = -500 }, wantErr: true},
		{name: "zero installment", mutate: func(r *PaymentRequest) { r.Installment = 0 }, wantErr: true},
		{name: "installment above range", mutate: func(r *PaymentRequest) { r.Installment = 13 }, wantErr: true},
		{name: "empty holder", mutate: func(r *PaymentRequest) { r.CardHolder = "" }, wantErr: true},
		{name: "card 14 digits", mutate: func(r *PaymentRequest) { r.CardNumber = "41111111111111" }, wantErr: true},
		{name: "card 17 digits", mutate: func(r *PaymentRequest) { r.CardNumber = "41111111111111111" }, wantErr: true},
		{name: "card with letters", mutate: func(r *PaymentRequest) { r.CardNumber = "4111abcd11111111" }, wantErr: true},
		{name: "month 00", mutate: func(r *PaymentRequest) { r.ExpireMonth = "00" }, wantErr: true},
		{name: "month 13", mutate: func(r *PaymentRequest) { r.ExpireMonth = "13" }, wantErr: true},
		{name: "month single digit", mutate: func(r *PaymentRequest) { r.ExpireMonth = "1" }, wantErr: true},
		{name: "two digit year", mutate: func(r *PaymentRequest) { r.ExpireYear = "31" }, wantErr: true},
		{name: "year in the past", mutate: func(r *PaymentRequest) { r.ExpireYear = "2019" }, wantErr: true},
		{name: "cvc 2 digits", mutate: func(r *PaymentRequest) { r.Cvc = "12" }, wantErr: true},
		{name: "cvc 5 digits", mutate: func(r *PaymentRequest) { r.Cvc = "12345" }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, errors.KindValidation, errors.KindOf(err))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCardBrandOf(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{name: "visa", number: "4111111111111111", want: BrandVisa},
		{name: "mastercard 5-series", number: "5555555555554444", want: BrandMastercard},
		{name: "mastercard 2-series", number: "2221000000000009", want: BrandMastercard},
		{name: "amex 34", number: "340000000000009", want: BrandAmex},
		{name: "amex 37", number: "378282246310005", want: BrandAmex},
		{name: "unrecognized", number: "6011000000000004", want: BrandUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CardBrandOf(tt.number))
		})
	}
}

func TestFlowStatusPredicates(t *testing.T) {
	assert.True(t, FlowAwaitingVerification.CanComplete())
	assert.False(t, FlowSettled.CanComplete())
	assert.False(t, FlowCreated.CanComplete())
	assert.True(t, FlowSettled.IsTerminal())
	assert.True(t, FlowFailed.IsTerminal())
	assert.False(t, FlowCompleting.IsTerminal())
	assert.True(t, FlowFailed.IsFailed())
	assert.True(t, FlowSettled.IsSettled())
}
