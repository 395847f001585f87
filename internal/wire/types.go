// Package wire implements §4.I and §6: the JSON wire format for
// SessionState and the client's two message shapes (a full state update, or
// a regenerate command).
package wire

// WorldDTO is the on-wire shape of a server-derived World. Field names are
// an implementation choice (§6 pins SessionState's own fields bit-exact but
// leaves the nested World's shape to the implementer).
type WorldDTO struct {
	Name         string   `json:"name"`
	UWP          string   `json:"uwp"`
	TradeClasses []string `json:"trade_classes"`
}

// AvailableGoodDTO mirrors §6's AvailableGood shape.
type AvailableGoodDTO struct {
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	Purchased   int64  `json:"purchased"`
	BaseCost    int64  `json:"base_cost"`
	BuyCost     int64  `json:"buy_cost"`
	SellPrice   *int64 `json:"sell_price,omitempty"`
	SourceIndex int    `json:"source_index"`
}

// GoodsTableDTO wraps the goods list in the "goods" envelope §6 specifies.
type GoodsTableDTO struct {
	Goods []AvailableGoodDTO `json:"goods"`
}

// FreightLotDTO mirrors one entry of available_passengers.freight_lots.
type FreightLotDTO struct {
	Size int32 `json:"size"`
}

// PassengersDTO mirrors §6's available_passengers object.
type PassengersDTO struct {
	High        int32           `json:"high"`
	Medium      int32           `json:"medium"`
	Basic       int32           `json:"basic"`
	Low         int32           `json:"low"`
	FreightLots []FreightLotDTO `json:"freight_lots"`
}

// ManifestDTO mirrors §6's ship_manifest object. SellPlan keys are decimal
// source indices, per the schema's "<index>": i32 map shape.
type ManifestDTO struct {
	HighPassengers    int32              `json:"high_passengers"`
	MediumPassengers  int32              `json:"medium_passengers"`
	BasicPassengers   int32              `json:"basic_passengers"`
	LowPassengers     int32              `json:"low_passengers"`
	FreightLotIndices []int              `json:"freight_lot_indices"`
	TradeGoods        []AvailableGoodDTO `json:"trade_goods"`
	SellPlan          map[string]int32   `json:"sell_plan"`
	Profit            int64              `json:"profit"`
}

// SessionState is the bit-exact on-wire shape of §6's SessionState JSON
// schema; it is what both directions of the protocol send. "_world" and
// "_coords" fields use pointers/nil so an Unset side encodes to JSON null
// rather than a zero-valued object.
type SessionState struct {
	Version uint32 `json:"version"`

	OriginWorldName string     `json:"origin_world_name"`
	OriginUWP       string     `json:"origin_uwp"`
	OriginCoords    *[2]int32  `json:"origin_coords"`
	OriginZone      string     `json:"origin_zone"`
	OriginWorld     *WorldDTO  `json:"origin_world"`

	DestWorldName string    `json:"dest_world_name"`
	DestUWP       string    `json:"dest_uwp"`
	DestCoords    *[2]int32 `json:"dest_coords"`
	DestZone      string    `json:"dest_zone"`
	DestWorld     *WorldDTO `json:"dest_world"`

	AvailableGoods      GoodsTableDTO  `json:"available_goods"`
	AvailablePassengers *PassengersDTO `json:"available_passengers"`
	ShipManifest        ManifestDTO    `json:"ship_manifest"`

	BuyerBrokerSkill  int16 `json:"buyer_broker_skill"`
	SellerBrokerSkill int16 `json:"seller_broker_skill"`
	StewardSkill      int16 `json:"steward_skill"`
	IllegalGoods      bool  `json:"illegal_goods"`
}

// Default returns the cold-start SessionState: version 0, everything
// Unset/empty, per §8 scenario 1.
func Default() SessionState {
	return SessionState{
		Version:        0,
		OriginZone:     "Green",
		DestZone:       "Green",
		AvailableGoods: GoodsTableDTO{Goods: []AvailableGoodDTO{}},
		ShipManifest: ManifestDTO{
			FreightLotIndices: []int{},
			TradeGoods:        []AvailableGoodDTO{},
			SellPlan:          map[string]int32{},
		},
	}
}

// Command is the client's non-state-update message: `{"command":"regenerate"}`.
type Command struct {
	Command string `json:"command"`
}

// CommandRegenerate is the only command value §4.I/§6 define.
const CommandRegenerate = "regenerate"
