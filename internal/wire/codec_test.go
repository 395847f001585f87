package wire

import "testing"

func TestDecodeCommandFrame(t *testing.T) {
	frame, err := Decode([]byte(`{"command":"regenerate"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Command == nil || frame.State != nil {
		t.Fatalf("expected command frame, got %+v", frame)
	}
	if frame.Command.Command != CommandRegenerate {
		t.Fatalf("expected %q, got %q", CommandRegenerate, frame.Command.Command)
	}
}

func TestDecodeStateFrame(t *testing.T) {
	state := Default()
	state.OriginWorldName = "Regina"
	state.OriginUWP = "A788899-A"
	data, err := Encode(state)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	frame, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if frame.State == nil || frame.Command != nil {
		t.Fatalf("expected state frame, got %+v", frame)
	}
	if frame.State.OriginWorldName != "Regina" {
		t.Fatalf("expected Regina, got %q", frame.State.OriginWorldName)
	}
}

func TestDecodeMalformedFrameReturnsError(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestDecodeUnknownTopLevelFieldRejected(t *testing.T) {
	if _, err := Decode([]byte(`{"version":1,"bogus_field":true}`)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestSessionStateRoundTrip(t *testing.T) {
	price := int64(4500)
	coords := [2]int32{19, 10}
	state := SessionState{
		Version:         3,
		OriginWorldName: "Regina",
		OriginUWP:       "A788899-A",
		OriginCoords:    &coords,
		OriginZone:      "Green",
		AvailableGoods: GoodsTableDTO{Goods: []AvailableGoodDTO{
			{Name: "Common Electronics", Quantity: 40, BaseCost: 20000, BuyCost: 21000, SellPrice: &price, SourceIndex: 11},
		}},
		ShipManifest: ManifestDTO{
			SellPlan:          map[string]int32{"11": 5},
			FreightLotIndices: []int{},
			TradeGoods:        []AvailableGoodDTO{},
		},
	}

	data, err := Encode(state)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	frame, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if frame.State.OriginCoords == nil || *frame.State.OriginCoords != coords {
		t.Fatalf("coords did not round-trip: %+v", frame.State.OriginCoords)
	}
	if frame.State.ShipManifest.SellPlan["11"] != 5 {
		t.Fatalf("sell plan did not round-trip: %+v", frame.State.ShipManifest.SellPlan)
	}
}
