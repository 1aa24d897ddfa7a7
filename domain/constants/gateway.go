package constants

// Gateway wire protocol constants. The acquiring gateway speaks a SOAP-ish
// dialect: one endpoint, per-operation SOAPAction header, tempuri namespace.
const (
	SoapEnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	GatewayNS      = "http://tempuri.org/"

	ActionThreeDPayment         = "http://tempuri.org/ThreeDPayment"
	ActionCompleteThreeDPayment = "http://tempuri.org/CompleteThreeDPayment"
	ActionSaveCard              = "http://tempuri.org/SaveCard"
	ActionDeleteCard            = "http://tempuri.org/DeleteCard"

	// SecurityType3D marks a payment as requiring the 3-D Secure redirect leg.
	SecurityType3D = "3D"

	ContentTypeXML = "text/xml;charset=UTF-8"
)

// Operation names used for journaling and alerting.
const (
	OpInitPayment     = "ThreeDPayment"
	OpCompletePayment = "CompleteThreeDPayment"
	OpSaveCard        = "SaveCard"
	OpDeleteCard      = "DeleteCard"
)
