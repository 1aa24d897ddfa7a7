package application

import (
	"go.uber.org/zap"

	"payments-gateway/domain/repositories"
	"payments-gateway/infrastructure/database_mgo"
	"payments-gateway/infrastructure/database_mgo/cards"
	"payments-gateway/infrastructure/database_mgo/flows"
	"payments-gateway/infrastructure/database_mgo/journal"
	"payments-gateway/infrastructure/service/gateway_service"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/gpooling"
)

type PaymentApplication struct {
	Config            *configs.Config
	Logger            *zap.Logger
	FlowRepository    repositories.FlowRepository
	GatewayRepository repositories.GatewayRepository
	CardRepository    repositories.CardRepository
	IPool             gpooling.IPool
}

func NewPaymentApplication(config *configs.Config, logger *zap.Logger, pool gpooling.IPool) *PaymentApplication {
	db := database_mgo.NewMongoDBconnection(config.MongoURI)

	journalRepository := journal.NewJournalCollectionImpl(db, config)

	return &PaymentApplication{
		Config:            config,
		Logger:            logger,
		FlowRepository:    flows.NewFlowCollectionImpl(db, config),
		GatewayRepository: gateway_service.NewGatewayService(config.Gateway, logger, pool, journalRepository),
		CardRepository:    cards.NewCardCollectionImpl(db, config),
		IPool:             pool,
	}
}
