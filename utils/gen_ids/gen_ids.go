// Package gen_ids issues order ids for payment attempts. An order id is the
// correlation key between the two phases of a 3-D Secure transaction and must
// never repeat across attempts, so issuance is serialized through a channel
// and the counter is seeded from the clock at startup.
package gen_ids

import (
	"fmt"
	"time"
)

type ObID struct {
	Prefix       string
	LatestId     int64
	GetIdChannel chan chan int64
	MaxLen       int
}

var ObjIDs map[string]*ObID

func InitGenIDservice() {
	prefixes := []string{"PG", "CV"}

	ObjIDs = map[string]*ObID{}

	for _, prefix := range prefixes {
		ObjIDs[prefix] = &ObID{
			Prefix: prefix,
			// the clock seed only makes a same-day restart collision
			// unlikely; the unique order_id index on the flow collection
			// is the backstop that actually guarantees uniqueness
			LatestId:     time.Now().UnixNano() % 1_000_000_000,
			GetIdChannel: make(chan chan int64, 1000),
			MaxLen:       9,
		}
	}

	for _, ob := range ObjIDs {
		go func(ob *ObID) {
			for v := range ob.GetIdChannel {
				v <- ob.LatestId
				ob.LatestId++
			}
		}(ob)
	}
}

func GetId(prefix string) string {
	id := make(chan int64, 1)
	ObjIDs[prefix].GetIdChannel <- id

	data := <-id

	genId := fmt.Sprint(data)

	if gt := ObjIDs[prefix].MaxLen - len(genId); gt > 0 {
		for i := 0; i < gt; i++ {
			genId = "0" + genId
		}
	}

	date := time.Now().Format("20060102")
	return prefix + date + "-" + genId
}

// GetIdOrderId returns a fresh order id for a payment attempt.
func GetIdOrderId() string {
	return GetId("PG")
}

// GetIdCardRef returns a reference id for a card-vault operation.
func GetIdCardRef() string {
	return GetId("CV")
}
