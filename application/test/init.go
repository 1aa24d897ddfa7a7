package test

import (
	"sync"

	"payments-gateway/application"
	"payments-gateway/domain/repositories/mocks"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/gen_ids"
	"payments-gateway/utils/gpooling"
	logger2 "payments-gateway/utils/logger"
)

type MockService struct {
	FlowRepository     *mocks.FlowRepository
	GatewayRepository  *mocks.GatewayRepository
	CardRepository     *mocks.CardRepository
	PaymentApplication *application.PaymentApplication
}

var genIdsOnce sync.Once

func NewTestPaymentApplication() *MockService {
	config := &configs.Config{
		ENV:         "test",
		MaxPoolSize: 10,
		Gateway: configs.Gateway{
			Uri:        "https://gateway.example/paygate.asmx",
			ClientCode: "CC001",
			Username:   "merchant",
			Password:   "secret",
			Guid:       "b3c84a2e",
			SuccessUrl: "https://shop.example/ok",
			ErrorUrl:   "https://shop.example/fail",
		},
		Commission: configs.Commission{
			InstallmentRate: 1.5,
		},
	}

	logger, err := logger2.NewLogger("production")

	if err != nil {
		panic(err)
	}

	pool, err := gpooling.NewPooling(config.MaxPoolSize, logger)

	if err != nil {
		panic(err)
	}

	genIdsOnce.Do(gen_ids.InitGenIDservice)

	flowRepository := &mocks.FlowRepository{}
	gatewayRepository := &mocks.GatewayRepository{}
	cardRepository := &mocks.CardRepository{}

	return &MockService{
		FlowRepository:    flowRepository,
		GatewayRepository: gatewayRepository,
		CardRepository:    cardRepository,
		PaymentApplication: &application.PaymentApplication{
			Config:            config,
			Logger:            logger,
			FlowRepository:    flowRepository,
			GatewayRepository: gatewayRepository,
			CardRepository:    cardRepository,
			IPool:             pool,
		},
	}
}
