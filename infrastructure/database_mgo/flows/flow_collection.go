package flows

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"payments-gateway/domain/entities"
	"payments-gateway/utils/configs"
	"payments-gateway/utils/helpers"
	"payments-gateway/utils/mongoindex"
)

// FlowCollection persists payment flow snapshots. order_id is unique: one
// snapshot per payment attempt, ever.
type FlowCollection struct {
	conf       *configs.Config
	collection *mongo.Collection
}

func NewFlowCollectionImpl(db *mongo.Client, conf *configs.Config) *FlowCollection {
	c := db.Database(conf.MongoDB).Collection("payment_flows")

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "order_id", Value: -1},
	}, true)

	mongoindex.EnsureIndex(context.TODO(), c, []bson.E{
		{Key: "status", Value: -1},
		{Key: "updated_time", Value: -1},
	}, false)

	return &FlowCollection{
		conf:       conf,
		collection: c,
	}
}

func (f *FlowCollection) Create(ctx context.Context, flow *entities.FlowEntity) (*entities.FlowEntity, error) {
	flow.CreatedTime = helpers.GetCurrentTime()
	flow.UpdatedTime = flow.CreatedTime

	_, err := f.collection.InsertOne(ctx, flow)
	if err != nil {
		return nil, err
	}
	return flow, nil
}

func (f *FlowCollection) FindByOrderID(ctx context.Context, orderId string) (res *entities.FlowEntity, err error) {
	err = f.collection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&res)
	return
}

func (f *FlowCollection) Update(ctx context.Context, flow *entities.FlowEntity) (*entities.FlowEntity, error) {
	flow.UpdatedTime = helpers.GetCurrentTime()

	_, err := f.collection.ReplaceOne(ctx, bson.M{"order_id": flow.OrderId}, flow)
	if err != nil {
		return nil, err
	}
	return flow, nil
}

func (f *FlowCollection) FindStale(ctx context.Context, before time.Time) (res []*entities.FlowEntity, err error) {
	var limit int64 = 100

	cur, err := f.collection.Find(ctx, bson.M{
		"status":       entities.FlowAwaitingVerification,
		"updated_time": bson.M{"$lte": before},
	}, &options.FindOptions{
		Limit: &limit,
	})
	if err != nil {
		return nil, err
	}

	for cur.Next(helpers.ContextWithTimeOut()) {
		var flow entities.FlowEntity

		if err := cur.Decode(&flow); err != nil {
			continue
		}

		res = append(res, &flow)
	}
	return res, nil
}
