package gateway

type SaveCardRequest struct {
	Credentials
	CardHolder  string `xml:"pay:CardHolderName"`
	CardNumber  string `xml:"pay:CardNumber"`
	ExpireMonth string `xml:"pay:ExpireMonth"`
	ExpireYear  string `xml:"pay:ExpireYear"`
	Cvc         string `xml:"pay:Cvv"`
	OwnerRef    string `xml:"pay:CustomerNumber"`
}

type SaveCardResult struct {
	ResultCode    string `xml:"ResultCode"`
	ResultMessage string `xml:"ResultMessage"`
	CardToken     string `xml:"CardToken"`
}

type DeleteCardRequest struct {
	Credentials
	CardToken string `xml:"pay:CardToken"`
}

type DeleteCardResult struct {
	ResultCode    string `xml:"ResultCode"`
	ResultMessage string `xml:"ResultMessage"`
}
