package cards

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"payments-gateway/domain/entities"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/helpers"
	"payments-gateway/utils/mongoindex"
)

// CardCollection stores vault tokens and masked card metadata, keyed by the
// gateway-issued token.
type CardCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewCardCollectionImpl(db *mongo.Client, conf *configs.Config) *CardCollection {
	c := db.Database(conf.MongoDB).Collection("saved_cards")

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "token", Value: -1},
	}, true)

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "owner_id", Value: -1},
	}, false)

	return &CardCollection{
		conf:       conf,
		collection: c,
	}
}

func (c *CardCollection) Save(ctx context.Context, card *entities.SavedCard) (*entities.SavedCard, error) {
	card.CreatedTime = helpers.GetCurrentTime()

	_, err := c.collection.InsertOne(ctx, card)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (c *CardCollection) FindByToken(ctx context.Context, token string) (res *entities.SavedCard, err error) {
	err = c.collection.FindOne(ctx, bson.M{"token": token}).Decode(&res)
	return
}

func (c *CardCollection) FindByOwner(ctx context.Context, ownerId string) (res []*entities.SavedCard, err error) {
	cur, err := c.collection.Find(ctx, bson.M{"owner_id": ownerId})
	if err != nil {
		return nil, err
	}

	for cur.Next(helpers.ContextWithTimeOut()) {
		var card entities.SavedCard

		if err := cur.Decode(&card); err != nil {
			continue
		}

		res = append(res, &card)
	}
	return res, nil
}

func (c *CardCollection) DeleteByToken(ctx context.Context, token string) error {
	_, err := c.collection.DeleteOne(ctx, bson.M{"token": token})
	return err
}
