package repositories

import (
	"context"
	"time"

	"payments-gateway/domain/entities"
	"payments-gateway/domain/entities/gateway"
)

// FlowRepository persists payment flow snapshots keyed by order id, so the
// completion phase can resume a flow started by an earlier call.
type FlowRepository interface {
	Create(ctx context.Context, flow *entities.FlowEntity) (*entities.FlowEntity, error)
	FindByOrderID(ctx context.Context, orderId string) (*entities.FlowEntity, error)
	Update(ctx context.Context, flow *entities.FlowEntity) (*entities.FlowEntity, error)
	// FindStale lists flows stuck in AwaitingVerification since before the
	// cutoff. Expiring them is an outside job; nothing in the payment path
	// transitions a flow out of AwaitingVerification on its own.
	FindStale(ctx context.Context, before time.Time) ([]*entities.FlowEntity, error)
}

// GatewayRepository is the acquiring gateway: one method per wire operation.
type GatewayRepository interface {
	InitThreeDPayment(ctx context.Context, req *gateway.ThreeDPaymentRequest) (*gateway.InitializationResult, error)
	CompletePayment(ctx context.Context, req *gateway.CompleteThreeDPaymentRequest) (*gateway.CompletionResult, error)
	SaveCard(ctx context.Context, req *gateway.SaveCardRequest) (cardToken string, err error)
	DeleteCard(ctx context.Context, req *gateway.DeleteCardRequest) error
}

// CardRepository stores vault tokens with masked card metadata.
type CardRepository interface {
	Save(ctx context.Context, card *entities.SavedCard) (*entities.SavedCard, error)
	FindByToken(ctx context.Context, token string) (*entities.SavedCard, error)
	FindByOwner(ctx context.Context, ownerId string) ([]*entities.SavedCard, error)
	DeleteByToken(ctx context.Context, token string) error
}

// JournalRepository records masked gateway exchanges for audit.
type JournalRepository interface {
	Write(ctx context.Context, record *entities.ExchangeRecord) error
}
