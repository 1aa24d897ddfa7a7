package gateway

// ThreeDPaymentRequest initializes a payment; the gateway answers with
// redirect content that sends the cardholder to the bank's verification page.
type ThreeDPaymentRequest struct {
	Credentials
	CardHolder   string `xml:"pay:CardHolderName"`
	CardNumber   string `xml:"pay:CardNumber"`
	ExpireMonth  string `xml:"pay:ExpireMonth"`
	ExpireYear   string `xml:"pay:ExpireYear"`
	Cvc          string `xml:"pay:Cvv"`
	SuccessUrl   string `xml:"pay:SuccessUrl"`
	ErrorUrl     string `xml:"pay:ErrorUrl"`
	OrderId      string `xml:"pay:OrderId"`
	Installment  int    `xml:"pay:InstallmentCount"`
	Amount       string `xml:"pay:Amount"`
	TotalAmount  string `xml:"pay:TotalAmount"`
	Hash         string `xml:"pay:TransactionHash"`
	SecurityType string `xml:"pay:TransactionSecurity"`
	ClientIP     string `xml:"pay:ClientIP"`
	UserRef      string `xml:"pay:ReferenceCode"`
	Description  string `xml:"pay:Description"`
}

type ThreeDPaymentResult struct {
	ResultCode    string `xml:"ResultCode"`
	ResultMessage string `xml:"ResultMessage"`
	TransactionId string `xml:"TransactionId"`
	OrderId       string `xml:"OrderId"`
	RedirectUrl   string `xml:"RedirectUrl"`
	HtmlContent   string `xml:"HtmlContent"`
}
