package entities

import "time"

// ExchangeRecord is one gateway round-trip as journaled for audit. Bodies are
// masked before they get here; card numbers and CVCs never reach storage.
type ExchangeRecord struct {
	OrderId      string    `bson:"order_id,omitempty" json:"order_id,omitempty"`
	Operation    string    `bson:"operation" json:"operation"`
	RequestBody  string    `bson:"request_body" json:"request_body"`
	ResponseBody string    `bson:"response_body,omitempty" json:"response_body,omitempty"`
	Err          string    `bson:"err,omitempty" json:"err,omitempty"`
	CreatedTime  time.Time `bson:"created_time" json:"created_time"`
}
