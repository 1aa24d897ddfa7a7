package constants

const (
	MsgErrAmountNotPositive   = "amount must be greater than zero"
	MsgErrInstallmentRange    = "installment count out of range"
	MsgErrCardNumberInvalid   = "card number is invalid"
	MsgErrCardHolderEmpty     = "card holder is empty"
	MsgErrExpireMonthInvalid  = "expire month is invalid"
	MsgErrExpireYearInvalid   = "expire year is invalid"
	MsgErrCardExpired         = "card is expired"
	MsgErrCvcInvalid          = "cvc is invalid"
	MsgErrOrderNotFound       = "order not found"
	MsgErrFlowNotCompletable  = "order is not awaiting verification"
	MsgErrVerificationMissing = "verification token is missing"
	MsgErrCardTokenEmpty      = "card token is empty"
	MsgErrOwnerEmpty          = "owner id is empty"
	MsgErrCredentialsMissing  = "gateway credentials are not configured"
)
