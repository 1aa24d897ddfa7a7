package journal

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"payments-gateway/domain/entities"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/mongoindex"
)

// JournalCollection keeps one document per gateway round-trip. Bodies arrive
// already masked; this layer never sees a full PAN.
type JournalCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewJournalCollectionImpl(db *mongo.Client, conf *configs.Config) *JournalCollection {
	c := db.Database(conf.MongoDB).Collection("gateway_journal")

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "order_id", Value: -1},
	}, false)

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "created_time", Value: -1},
	}, false)

	return &JournalCollection{
		conf:       conf,
		collection: c,
	}
}

func (j *JournalCollection) Write(ctx context.Context, record *entities.ExchangeRecord) error {
	_, err := j.collection.InsertOne(ctx, record)
	return err
}
