package gateway

// RedirectContent is what the cardholder must be handed after a successful
// initialization: either a URL to redirect to, or an HTML fragment to render
// inline. Exactly one branch is populated; accessors make reading the absent
// branch impossible rather than silently empty.
type RedirectContent struct {
	url    string
	markup string
}

func UrlRedirect(url string) RedirectContent {
	return RedirectContent{url: url}
}

func MarkupRedirect(markup string) RedirectContent {
	return RedirectContent{markup: markup}
}

func (r RedirectContent) IsUrl() bool { return r.url != "" }

func (r RedirectContent) Url() (string, bool) {
	return r.url, r.url != ""
}

func (r RedirectContent) Markup() (string, bool) {
	return r.markup, r.markup != ""
}

// InitializationResult is the typed outcome of phase one. ResultCode and
// ResultMessage echo the gateway's own verdict for logging and display.
type InitializationResult struct {
	OrderId       string
	TransactionId string
	ResultCode    string
	ResultMessage string
	Redirect      RedirectContent
}

// CompletionResult is the typed outcome of phase two.
type CompletionResult struct {
	OrderId       string
	TransactionId string
	ReceiptId     string
	SettledAmount int64
	ResultCode    string
	ResultMessage string
}
