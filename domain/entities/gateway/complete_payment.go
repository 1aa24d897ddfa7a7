package gateway

// CompleteThreeDPaymentRequest finishes a payment after the bank's
// verification callback, correlated by order and transaction ids.
type CompleteThreeDPaymentRequest struct {
	Credentials
	VerificationToken string `xml:"pay:ThreeDSecureCode"`
	TransactionId     string `xml:"pay:TransactionId"`
	OrderId           string `xml:"pay:OrderId"`
}

type CompleteThreeDPaymentResult struct {
	ResultCode    string `xml:"ResultCode"`
	ResultMessage string `xml:"ResultMessage"`
	ReceiptId     string `xml:"ReceiptId"`
	Amount        string `xml:"Amount"`
	OrderId       string `xml:"OrderId"`
	TransactionId string `xml:"TransactionId"`
}
