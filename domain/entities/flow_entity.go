package entities

import "time"

// FlowEntity is the persisted snapshot of a payment attempt, keyed by order
// id so that completing phase two is a lookup, not an implicit contract
// between two unrelated calls.
type FlowEntity struct {
	OrderId       string     `bson:"order_id" json:"order_id"`
	UserRef       string     `bson:"user_ref,omitempty" json:"user_ref,omitempty"`
	Amount        int64      `bson:"amount" json:"amount"`
	TotalAmount   int64      `bson:"total_amount" json:"total_amount"`
	Installment   int        `bson:"installment" json:"installment"`
	Status        FlowStatus `bson:"status" json:"status"`
	TransactionId string     `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	ReceiptId     string     `bson:"receipt_id,omitempty" json:"receipt_id,omitempty"`
	MaskedCard    string     `bson:"masked_card,omitempty" json:"masked_card,omitempty"`
	FailReason    string     `bson:"fail_reason,omitempty" json:"fail_reason,omitempty"`
	CreatedTime   time.Time  `bson:"created_time" json:"created_time"`
	UpdatedTime   time.Time  `bson:"updated_time" json:"updated_time"`
}
