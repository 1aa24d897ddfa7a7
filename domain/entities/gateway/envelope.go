package gateway

import "encoding/xml"

// Outbound envelopes carry explicit namespace prefixes; the gateway rejects
// unprefixed bodies. Inbound envelopes are matched by local name only, so
// whatever prefix the gateway chooses on its side decodes the same way.

type RequestEnvelope struct {
	XMLName      xml.Name    `xml:"soapenv:Envelope"`
	XmlnsSoapenv string      `xml:"xmlns:soapenv,attr"`
	XmlnsPay     string      `xml:"xmlns:pay,attr"`
	Header       struct{}    `xml:"soapenv:Header"`
	Body         RequestBody `xml:"soapenv:Body"`
}

// RequestBody holds exactly one operation element; nil fields are omitted.
type RequestBody struct {
	ThreeDPayment         *ThreeDPaymentRequest         `xml:"pay:ThreeDPayment,omitempty"`
	CompleteThreeDPayment *CompleteThreeDPaymentRequest `xml:"pay:CompleteThreeDPayment,omitempty"`
	SaveCard              *SaveCardRequest              `xml:"pay:SaveCard,omitempty"`
	DeleteCard            *DeleteCardRequest            `xml:"pay:DeleteCard,omitempty"`
}

// Credentials is the group every operation element opens with.
type Credentials struct {
	ClientCode string `xml:"pay:ClientCode"`
	Username   string `xml:"pay:Username"`
	Password   string `xml:"pay:Password"`
	Guid       string `xml:"pay:Guid"`
}

type ResponseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    ResponseBody `xml:"Body"`
}

// ResponseBody exposes one result pointer per operation; the one matching the
// called operation must be non-nil after decoding.
type ResponseBody struct {
	ThreeDPaymentResult         *ThreeDPaymentResult         `xml:"ThreeDPaymentResponse>ThreeDPaymentResult"`
	CompleteThreeDPaymentResult *CompleteThreeDPaymentResult `xml:"CompleteThreeDPaymentResponse>CompleteThreeDPaymentResult"`
	SaveCardResult              *SaveCardResult              `xml:"SaveCardResponse>SaveCardResult"`
	DeleteCardResult            *DeleteCardResult            `xml:"DeleteCardResponse>DeleteCardResult"`
}
