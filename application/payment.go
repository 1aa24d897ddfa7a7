package application

import (
	"context"
	"time"

	"payments-gateway/domain/entities"
	gw "payments-gateway/domain/entities/gateway"
)

// Payment is the single-call convenience path: it initializes the 3-D Secure
// flow and hands back the redirect content. Settlement still happens through
// CompletePayment once the bank calls back; a payment is never settled by
// this call alone.
func (usecase PaymentApplication) Payment(ctx context.Context, req entities.PaymentRequest) (*gw.InitializationResult, error) {
	return usecase.InitPayment(ctx, req)
}

// GetFlow exposes the persisted snapshot of one payment attempt.
func (usecase PaymentApplication) GetFlow(ctx context.Context, orderId string) (*entities.FlowEntity, error) {
	return usecase.FlowRepository.FindByOrderID(ctx, orderId)
}

// ListStaleFlows lists flows stuck in AwaitingVerification for longer than
// olderThan. The core never expires them itself; this feeds whatever outside
// job owns that policy.
func (usecase PaymentApplication) ListStaleFlows(ctx context.Context, olderThan time.Duration) ([]*entities.FlowEntity, error) {
	return usecase.FlowRepository.FindStale(ctx, time.Now().UTC().Add(-olderThan))
}
