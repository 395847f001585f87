package pricing

import (
	"math"
	"math/rand"
	"testing"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/goods"
	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

func TestMultiplierTablesAreTotalAndMonotonic(t *testing.T) {
	prevBuy := math.Inf(1)
	for m := tableMin - 5; m <= tableMax+5; m++ {
		b := BuyMultiplier(m)
		if b > prevBuy {
			t.Fatalf("buy multiplier increased at M=%d: %f > %f", m, b, prevBuy)
		}
		prevBuy = b
	}

	prevSell := -1.0
	for m := tableMin - 5; m <= tableMax+5; m++ {
		s := SellMultiplier(m)
		if s < prevSell {
			t.Fatalf("sell multiplier decreased at M=%d: %f < %f", m, s, prevSell)
		}
		prevSell = s
	}
}

func TestSumDMMatchesSpecExample(t *testing.T) {
	dms := map[world.TradeClass]int16{
		world.Industrial: 2,
		world.HighTech:   3,
		world.Rich:       1,
	}
	classes := world.NewClassSet(world.Industrial, world.HighTech)
	if got := SumDM(dms, classes); got != 5 {
		t.Fatalf("expected sum of 2+3=5, got %d", got)
	}

	classesAll := world.NewClassSet(world.Industrial, world.HighTech, world.Rich)
	if got := SumDM(dms, classesAll); got != 6 {
		t.Fatalf("expected sum of 2+3+1=6 for all three matches, got %d", got)
	}

	if got := SumDM(dms, world.NewClassSet(world.Poor)); got != 0 {
		t.Fatalf("expected 0 for no matches, got %d", got)
	}
}

func TestPriceSellAbsentDestinationNilsAllPrices(t *testing.T) {
	cat, err := catalog.Standard()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	table := goods.Table{Goods: []goods.Good{
		{SourceIndex: 11, BaseCost: 20000},
		{SourceIndex: 12, BaseCost: 10000},
	}}
	rng := rand.New(rand.NewSource(7))
	PriceSell(&table, cat, nil, 0, 0, false, rng)
	for _, g := range table.Goods {
		if g.SellPrice != nil {
			t.Fatalf("expected nil sell price with no destination, got %v", *g.SellPrice)
		}
	}
}

func TestSortByDiscountIsNonDecreasing(t *testing.T) {
	table := goods.Table{Goods: []goods.Good{
		{SourceIndex: 1, BaseCost: 100, BuyCost: 150},
		{SourceIndex: 2, BaseCost: 100, BuyCost: 50},
		{SourceIndex: 3, BaseCost: 200, BuyCost: 100},
	}}
	SortByDiscount(&table)
	for i := 1; i < len(table.Goods); i++ {
		prev := discountRatio(table.Goods[i-1])
		cur := discountRatio(table.Goods[i])
		if cur < prev {
			t.Fatalf("discount ratios not non-decreasing at %d: %f < %f", i, cur, prev)
		}
	}
}

func TestPriceBuySetsAllBuyCosts(t *testing.T) {
	cat, err := catalog.Standard()
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	classes := world.NewClassSet(world.Industrial, world.HighTech)
	table := goods.Generate(cat, classes, 5, false, rand.New(rand.NewSource(9)))
	PriceBuy(&table, cat, classes, 1, 0, rand.New(rand.NewSource(10)))
	for _, g := range table.Goods {
		if g.BuyCost <= 0 && g.BaseCost > 0 {
			t.Errorf("good %d: expected positive buy cost, got %d", g.SourceIndex, g.BuyCost)
		}
	}
}
