package tickbook

import "github.com/axiomtick/tickbook/protocol"

type Side = protocol.Side

const (
	Buy  Side = protocol.SideBuy
	Sell Side = protocol.SideSell
)

type OrderType = protocol.OrderType

const (
	Market OrderType = protocol.OrderTypeMarket
	Limit  OrderType = protocol.OrderTypeLimit
)

type TimeInForce = protocol.TimeInForce

const (
	GFD TimeInForce = protocol.TimeInForceGFD
	IOC TimeInForce = protocol.TimeInForceIOC
	FOK TimeInForce = protocol.TimeInForceFOK
)

// Order is the resting state of an admitted order, stored by value inside
// the order pool's arena slot. EngineID is the order's own pool index,
// set by OrderPool.Allocate, so an *Order obtained from the pool carries
// its own slot index. Price level rings store only EngineIDs.
type Order struct {
	ClientID     int64
	EngineID     int32
	Side         Side
	Type         OrderType
	TIF          TimeInForce
	PriceIdx     int
	RemainingQty int64
	ArrivalSeq   uint64
}

// Trade is an immutable fill record appended to the TradeLog. Field order
// is part of the external contract: taker_client_id, maker_client_id,
// qty, price_idx, emission_ts. Do not reorder these fields.
type Trade struct {
	TakerClientID int64
	MakerClientID int64
	Qty           int64
	PriceIdx      int
	EmissionTS    int64
}
