package test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"payments-gateway/domain/entities"
	gw "payments-gateway/domain/entities/gateway"
	"payments-gateway/utils/crypt"
	"payments-gateway/utils/errors"
)

func validPaymentRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:      10000,
		Installment: 3,
		CardHolder:  "JOHN DOE",
		CardNumber:  "4111111111111111",
		ExpireMonth: "12",
		ExpireYear:  "2031",
		Cvc:         "123",
		ClientIP:    "10.0.0.1",
		UserRef:     "user-42",
	}
}

func echoFlow() func(ctx context.Context, f *entities.FlowEntity) *entities.FlowEntity {
	return func(ctx context.Context, f *entities.FlowEntity) *entities.FlowEntity { return f }
}

func TestInitPayment_Success(t *testing.T) {
	s := NewTestPaymentApplication()

	var statuses []entities.FlowStatus
	s.FlowRepository.On("Create", mock.Anything, mock.AnythingOfType("*entities.FlowEntity")).
		Run(func(args mock.Arguments) {
			statuses = append(statuses, args.Get(1).(*entities.FlowEntity).Status)
		}).
		Return(echoFlow(), nil)
	s.FlowRepository.On("Update", mock.Anything, mock.AnythingOfType("*entities.FlowEntity")).
		Run(func(args mock.Arguments) {
			statuses = append(statuses, args.Get(1).(*entities.FlowEntity).Status)
		}).
		Return(echoFlow(), nil)

	var sent *gw.ThreeDPaymentRequest
	s.GatewayRepository.On("InitThreeDPayment", mock.Anything, mock.AnythingOfType("*gateway.ThreeDPaymentRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*gw.ThreeDPaymentRequest)
		}).
		Return(func(ctx context.Context, req *gw.ThreeDPaymentRequest) *gw.InitializationResult {
			return &gw.InitializationResult{
				OrderId:       req.OrderId,
				TransactionId: "TX-77",
				Redirect:      gw.UrlRedirect("https://bank.example/3ds"),
			}
		}, nil)

	result, err := s.PaymentApplication.InitPayment(context.Background(), validPaymentRequest())

	assert.NoError(t, err)
	assert.Equal(t, "TX-77", result.TransactionId)
	assert.True(t, result.Redirect.IsUrl())

	// 10000 minor units at 1.5% over three installments
	assert.Equal(t, "100,00", sent.Amount)
	assert.Equal(t, "101,50", sent.TotalAmount)
	assert.Equal(t, "3D", sent.SecurityType)
	assert.Equal(t, "CC001", sent.ClientCode)
	assert.NotEmpty(t, sent.OrderId)
	assert.Equal(t,
		crypt.TransactionHash("CC001", "b3c84a2e", 3, "100,00", "101,50", sent.OrderId),
		sent.Hash,
	)

	assert.Equal(t, []entities.FlowStatus{entities.FlowInitializing, entities.FlowAwaitingVerification}, statuses)
}

func TestInitPayment_ValidationStopsBeforeGateway(t *testing.T) {
	s := NewTestPaymentApplication()

	req := validPaymentRequest()
	req.CardNumber = "41111111111111" // 14 digits

	_, err := s.PaymentApplication.InitPayment(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	s.GatewayRepository.AssertNotCalled(t, "InitThreeDPayment", mock.Anything, mock.Anything)
	s.FlowRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInitPayment_GatewayRejectedFailsFlow(t *testing.T) {
	s := NewTestPaymentApplication()

	var lastStatus entities.FlowStatus
	var failReason string
	s.FlowRepository.On("Create", mock.Anything, mock.AnythingOfType("*entities.FlowEntity")).Return(echoFlow(), nil)
	s.FlowRepository.On("Update", mock.Anything, mock.AnythingOfType("*entities.FlowEntity")).
		Run(func(args mock.Arguments) {
			flow := args.Get(1).(*entities.FlowEntity)
			lastStatus = flow.Status
			failReason = flow.FailReason
		}).
		Return(echoFlow(), nil)
	s.GatewayRepository.On("InitThreeDPayment", mock.Anything, mock.Anything).
		Return(nil, errors.GatewayRejected("Insufficient funds", "-1"))

	_, err := s.PaymentApplication.InitPayment(context.Background(), validPaymentRequest())

	assert.Error(t, err)
	assert.Equal(t, errors.KindGatewayRejected, errors.KindOf(err))
	assert.Equal(t, entities.FlowFailed, lastStatus)
	assert.Contains(t, failReason, "Insufficient funds")
}

func TestCompletePayment_Settles(t *testing.T) {
	s := NewTestPaymentApplication()

	flow := &entities.FlowEntity{
		OrderId:       "PG20260831-000000001",
		Amount:        10000,
		TotalAmount:   10150,
		Installment:   3,
		Status:        entities.FlowAwaitingVerification,
		TransactionId: "TX-77",
	}
	s.FlowRepository.On("FindByOrderID", mock.Anything, "PG20260831-000000001").Return(flow, nil)

	var statuses []entities.FlowStatus
	s.FlowRepository.On("Update", mock.Anything, mock.AnythingOfType("*entities.FlowEntity")).
		Run(func(args mock.Arguments) {
			statuses = append(statuses, args.Get(1).(*entities.FlowEntity).Status)
		}).
		Return(echoFlow(), nil)

	var sent *gw.CompleteThreeDPaymentRequest
	s.GatewayRepository.On("CompletePayment", mock.Anything, mock.AnythingOfType("*gateway.CompleteThreeDPaymentRequest")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(*gw.CompleteThreeDPaymentRequest)
		}).
		Return(&gw.CompletionResult{
			OrderId:       "PG20260831-000000001",
			TransactionId: "TX-77",
			ReceiptId:     "RCP-9",
			SettledAmount: 10150,
		}, nil)

	result, err := s.PaymentApplication.CompletePayment(context.Background(), "PG20260831-000000001", "3ds-code")

	assert.NoError(t, err)
	assert.Equal(t, "RCP-9", result.ReceiptId)
	assert.Equal(t, int64(10150), result.SettledAmount)
	assert.Equal(t, "TX-77", sent.TransactionId)
	assert.Equal(t, "3ds-code", sent.VerificationToken)
	assert.Equal(t, []entities.FlowStatus{entities.FlowCompleting, entities.FlowSettled}, statuses)
	assert.Equal(t, "RCP-9", flow.ReceiptId)
}

func TestCompletePayment_UnknownOrder(t *testing.T) {
	s := NewTestPaymentApplication()

	s.FlowRepository.On("FindByOrderID", mock.Anything, "PG-missing").Return(nil, nil)

	_, err := s.PaymentApplication.CompletePayment(context.Background(), "PG-missing", "3ds-code")

	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	s.GatewayRepository.AssertNotCalled(t, "CompletePayment", mock.Anything, mock.Anything)
}

func TestCompletePayment_AlreadySettled(t *testing.T) {
	s := NewTestPaymentApplication()

	s.FlowRepository.On("FindByOrderID", mock.Anything, "PG20260831-000000002").Return(&entities.FlowEntity{
		OrderId: "PG20260831-000000002",
		Status:  entities.FlowSettled,
	}, nil)

	_, err := s.PaymentApplication.CompletePayment(context.Background(), "PG20260831-000000002", "3ds-code")

	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	s.GatewayRepository.AssertNotCalled(t, "CompletePayment", mock.Anything, mock.Anything)
}

func TestCompletePayment_MissingToken(t *testing.T) {
	s := NewTestPaymentApplication()

	_, err := s.PaymentApplication.CompletePayment(context.Background(), "PG20260831-000000003", "")

	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

func TestCompletePayment_TransportKeepsFlowCompletable(t *testing.T) {
	s := NewTestPaymentApplication()

	flow := &entities.FlowEntity{
		OrderId:       "PG20260831-000000004",
		Status:        entities.FlowAwaitingVerification,
		TransactionId: "TX-88",
	}
	s.FlowRepository.On("FindByOrderID", mock.Anything, "PG20260831-000000004").Return(flow, nil)

	var statuses []entities.FlowStatus
	s.FlowRepository.On("Update", mock.Anything, mock.AnythingOfType("*entities.FlowEntity")).
		Run(func(args mock.Arguments) {
			statuses = append(statuses, args.Get(1).(*entities.FlowEntity).Status)
		}).
		Return(echoFlow(), nil)
	s.GatewayRepository.On("CompletePayment", mock.Anything, mock.Anything).
		Return(nil, errors.Transport("gateway unreachable", nil))

	_, err := s.PaymentApplication.CompletePayment(context.Background(), "PG20260831-000000004", "3ds-code")

	assert.Error(t, err)
	assert.Equal(t, errors.KindTransport, errors.KindOf(err))
	// the bank-side outcome is unknown, so the flow stays completable
	assert.Equal(t, []entities.FlowStatus{entities.FlowCompleting, entities.FlowAwaitingVerification}, statuses)
}

func TestSaveCard_StoresMaskedMetadata(t *testing.T) {
	s := NewTestPaymentApplication()

	s.GatewayRepository.On("SaveCard", mock.Anything, mock.AnythingOfType("*gateway.SaveCardRequest")).
		Return("tok_4f9d", nil)

	var stored *entities.SavedCard
	s.CardRepository.On("Save", mock.Anything, mock.AnythingOfType("*entities.SavedCard")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*entities.SavedCard)
		}).
		Return(func(ctx context.Context, c *entities.SavedCard) *entities.SavedCard { return c }, nil)

	card, err := s.PaymentApplication.SaveCard(context.Background(), entities.CardDetails{
		OwnerId:     "user-42",
		CardHolder:  "JOHN DOE",
		CardNumber:  "4111111111111111",
		ExpireMonth: "12",
		ExpireYear:  "2031",
		Cvc:         "123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok_4f9d", card.Token)
	assert.Equal(t, "411111******1111", stored.MaskedCard)
	assert.Equal(t, entities.BrandVisa, stored.CardBrand)
	assert.Equal(t, "user-42", stored.OwnerId)
}

func TestSaveCard_InvalidCardStopsBeforeGateway(t *testing.T) {
	s := NewTestPaymentApplication()

	_, err := s.PaymentApplication.SaveCard(context.Background(), entities.CardDetails{
		OwnerId:     "user-42",
		CardHolder:  "JOHN DOE",
		CardNumber:  "411",
		ExpireMonth: "12",
		ExpireYear:  "2031",
		Cvc:         "123",
	})

	assert.Error(t, err)
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	s.GatewayRepository.AssertNotCalled(t, "SaveCard", mock.Anything, mock.Anything)
}

func TestDeleteCard_SecondDeleteSurfacesRejection(t *testing.T) {
	s := NewTestPaymentApplication()

	s.GatewayRepository.On("DeleteCard", mock.Anything, mock.AnythingOfType("*gateway.DeleteCardRequest")).
		Return(nil).Once()
	s.GatewayRepository.On("DeleteCard", mock.Anything, mock.AnythingOfType("*gateway.DeleteCardRequest")).
		Return(errors.GatewayRejected("card not found", "-21"))
	s.CardRepository.On("DeleteByToken", mock.Anything, "tok_4f9d").Return(nil)

	assert.NoError(t, s.PaymentApplication.DeleteCard(context.Background(), "tok_4f9d"))

	err := s.PaymentApplication.DeleteCard(context.Background(), "tok_4f9d")
	assert.Error(t, err)
	assert.Equal(t, errors.KindGatewayRejected, errors.KindOf(err))

	s.CardRepository.AssertNumberOfCalls(t, "DeleteByToken", 1)
}

func TestListStaleFlows_UsesCutoff(t *testing.T) {
	s := NewTestPaymentApplication()

	var cutoff time.Time
	s.FlowRepository.On("FindStale", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			cutoff = args.Get(1).(time.Time)
		}).
		Return([]*entities.FlowEntity{{OrderId: "PG20260831-000000005", Status: entities.FlowAwaitingVerification}}, nil)

	stale, err := s.PaymentApplication.ListStaleFlows(context.Background(), time.Hour)

	assert.NoError(t, err)
	assert.Len(t, stale, 1)
	assert.WithinDuration(t, time.Now().UTC().Add(-time.Hour), cutoff, time.Minute)
}

func TestPayment_SingleCallInitializesOnly(t *testing.T) {
	s := NewTestPaymentApplication()

	s.FlowRepository.On("Create", mock.Anything, mock.Anything).Return(echoFlow(), nil)
	s.FlowRepository.On("Update", mock.Anything, mock.Anything).Return(echoFlow(), nil)
	s.GatewayRepository.On("InitThreeDPayment", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, req *gw.ThreeDPaymentRequest) *gw.InitializationResult {
			return &gw.InitializationResult{
				OrderId:       req.OrderId,
				TransactionId: "TX-90",
				Redirect:      gw.MarkupRedirect("<form/>"),
			}
		}, nil)

	result, err := s.PaymentApplication.Payment(context.Background(), validPaymentRequest())

	assert.NoError(t, err)
	markup, ok := result.Redirect.Markup()
	assert.True(t, ok)
	assert.Equal(t, "<form/>", markup)
	s.GatewayRepository.AssertNotCalled(t, "CompletePayment", mock.Anything, mock.Anything)
}
