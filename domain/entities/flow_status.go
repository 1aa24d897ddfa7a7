package entities

// FlowStatus tracks a two-phase 3-D Secure payment attempt.
//
//	Created -> Initializing -> AwaitingVerification -> Completing -> Settled
//	                      \-> Failed                           \-> Failed
type FlowStatus string

const (
	FlowCreated              FlowStatus = "CREATED"
	FlowInitializing         FlowStatus = "INITIALIZING"
	FlowAwaitingVerification FlowStatus = "AWAITING_VERIFICATION"
	FlowCompleting           FlowStatus = "COMPLETING"
	FlowSettled              FlowStatus = "SETTLED"
	FlowFailed               FlowStatus = "FAILED"
)

func (s FlowStatus) IsAwaitingVerification() bool {
	return s == FlowAwaitingVerification
}

func (s FlowStatus) IsSettled() bool {
	return s == FlowSettled
}

func (s FlowStatus) IsFailed() bool {
	return s == FlowFailed
}

// IsTerminal reports whether no further transition is possible.
func (s FlowStatus) IsTerminal() bool {
	return s == FlowSettled || s == FlowFailed
}

// CanComplete reports whether the flow may enter phase two.
func (s FlowStatus) CanComplete() bool {
	return s == FlowAwaitingVerification
}
