package pipeline

import (
	"math/rand"
	"testing"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/wire"
)

func TestHexDistanceZeroOnEqualCoords(t *testing.T) {
	a := [2]int32{19, 10}
	if d := hexDistance(a, a); d != 0 {
		t.Fatalf("expected 0 distance for identical coords, got %d", d)
	}
}

func TestHexDistanceSymmetric(t *testing.T) {
	a := [2]int32{19, 10}
	b := [2]int32{21, 12}
	if hexDistance(a, b) != hexDistance(b, a) {
		t.Fatalf("distance should be symmetric")
	}
}

func TestHexDistanceAdjacentIsOne(t *testing.T) {
	// Odd-column offset neighbor directly to the east is always distance 1.
	a := [2]int32{10, 10}
	b := [2]int32{11, 10}
	if d := hexDistance(a, b); d != 1 {
		t.Fatalf("expected adjacent hex distance 1, got %d", d)
	}
}

func TestRecomputeFirstWriteRegeneratesEverything(t *testing.T) {
	cat, err := catalog.Standard()
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	incoming := wire.Default()
	incoming.OriginWorldName = "Regina"
	incoming.OriginUWP = "A788899-A"
	incoming.DestWorldName = "Pixie"
	incoming.DestUWP = "C584556-5"
	coordsOrigin := [2]int32{19, 10}
	coordsDest := [2]int32{21, 12}
	incoming.OriginCoords = &coordsOrigin
	incoming.DestCoords = &coordsDest

	rng := rand.New(rand.NewSource(42))
	out := Recompute(nil, incoming, cat, rng)

	if out.OriginWorld == nil || out.DestWorld == nil {
		t.Fatalf("expected both worlds resolved, got origin=%v dest=%v", out.OriginWorld, out.DestWorld)
	}
	if len(out.AvailableGoods.Goods) == 0 {
		t.Fatalf("expected goods generated for a valid origin")
	}
	if out.AvailablePassengers == nil {
		t.Fatalf("expected passengers generated when both endpoints resolve")
	}
}

func TestRecomputeUnsetOriginYieldsEmptyGoods(t *testing.T) {
	cat, err := catalog.Standard()
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	incoming := wire.Default()
	rng := rand.New(rand.NewSource(1))
	out := Recompute(nil, incoming, cat, rng)

	if len(out.AvailableGoods.Goods) != 0 {
		t.Fatalf("expected empty goods for unset origin, got %d", len(out.AvailableGoods.Goods))
	}
	if out.AvailablePassengers != nil {
		t.Fatalf("expected nil passengers for unset endpoints")
	}
	if out.OriginWorld != nil || out.DestWorld != nil {
		t.Fatalf("expected nil worlds for unset endpoints")
	}
}

func TestRecomputeUnsetDestNilsSellPrices(t *testing.T) {
	cat, err := catalog.Standard()
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	incoming := wire.Default()
	incoming.OriginWorldName = "Regina"
	incoming.OriginUWP = "A788899-A"

	rng := rand.New(rand.NewSource(3))
	out := Recompute(nil, incoming, cat, rng)

	for _, g := range out.AvailableGoods.Goods {
		if g.SellPrice != nil {
			t.Fatalf("expected nil sell price with no destination, got %v", *g.SellPrice)
		}
	}
	if out.AvailablePassengers != nil {
		t.Fatalf("expected nil passengers with no destination")
	}
}

func TestRecomputeSkipsRegenerationWhenNothingChanged(t *testing.T) {
	cat, err := catalog.Standard()
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	incoming := wire.Default()
	incoming.OriginWorldName = "Regina"
	incoming.OriginUWP = "A788899-A"

	rng := rand.New(rand.NewSource(5))
	first := Recompute(nil, incoming, cat, rng)

	second := Recompute(&first, first, cat, rng)
	if len(second.AvailableGoods.Goods) != len(first.AvailableGoods.Goods) {
		t.Fatalf("expected goods table untouched when nothing changed")
	}
	for i, g := range second.AvailableGoods.Goods {
		f := first.AvailableGoods.Goods[i]
		if g.SourceIndex != f.SourceIndex || g.Quantity != f.Quantity || g.BuyCost != f.BuyCost {
			t.Fatalf("good %d changed when nothing changed: %+v vs %+v", i, g, f)
		}
	}
}
