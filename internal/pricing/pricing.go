// Package pricing implements §4.D: the price-multiplier ladder applied to
// each available good for buy-at-origin and optional sell-at-destination,
// driven by broker skills and summed trade-class DMs.
package pricing

import (
	"math"
	"math/rand"
	"sort"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/dice"
	"github.com/everforgeworks/traveller-tradehub/internal/goods"
	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

// buyTable maps a clamped M (from -3 to 25) to the buy-price multiplier,
// indexed as buyTable[M+3].
var buyTable = []float64{
	3.00, 2.50, 2.00, 1.75, 1.50, 1.35, 1.25, 1.20, 1.15, 1.10, 1.05, 1.00, 0.95,
	0.90, 0.85, 0.80, 0.75, 0.70, 0.65, 0.60, 0.55, 0.50, 0.45, 0.40, 0.35, 0.30,
	0.25, 0.20, 0.15,
}

// sellTable maps a clamped M (from -3 to 25) to the sell-price multiplier,
// indexed as sellTable[M+3].
var sellTable = []float64{
	0.10, 0.20, 0.30, 0.40, 0.45, 0.50, 0.55, 0.60, 0.65, 0.70, 0.75, 0.80, 0.85,
	0.90, 1.00, 1.05, 1.10, 1.15, 1.20, 1.25, 1.30, 1.40, 1.50, 1.60, 1.75, 2.00,
	2.50, 3.00, 4.00,
}

const tableMin = -3
const tableMax = 25

func lookup(table []float64, m int) float64 {
	if m < tableMin {
		m = tableMin
	}
	if m > tableMax {
		m = tableMax
	}
	return table[m-tableMin]
}

// BuyMultiplier maps a modified roll to the buy-price multiplier, clamped
// at both ends of the table.
func BuyMultiplier(m int) float64 { return lookup(buyTable, m) }

// SellMultiplier maps a modified roll to the sell-price multiplier, clamped
// at both ends of the table.
func SellMultiplier(m int) float64 { return lookup(sellTable, m) }

// SumDM implements §4.D's DM summation rule: sum every DM whose class is in
// classes, not "pick best". Missing entries contribute 0.
func SumDM(dms map[world.TradeClass]int16, classes world.ClassSet) int16 {
	var total int16
	for class, dm := range dms {
		if classes.Has(class) {
			total += dm
		}
	}
	return total
}

func roundToCredits(baseCost int64, multiplier float64) int64 {
	return int64(math.Round(float64(baseCost) * multiplier))
}

// PriceBuy rolls and sets BuyCost on every good in the table, per §4.D's
// buy-at-origin formula. cat resolves each good's DM maps by source index.
func PriceBuy(table *goods.Table, cat *catalog.Catalog, originClasses world.ClassSet, buyerSkill, sellerSkill int16, rng *rand.Rand) {
	for i := range table.Goods {
		g := &table.Goods[i]
		entry, ok := cat.Get(g.SourceIndex)
		if !ok {
			continue
		}
		roll := dice.Roll3D6(rng)
		m := roll + int(buyerSkill) - int(sellerSkill) +
			int(SumDM(entry.PurchaseDM, originClasses)) - int(SumDM(entry.SaleDM, originClasses))
		g.BuyCost = roundToCredits(g.BaseCost, BuyMultiplier(m))
	}
}

// PriceSell rolls and sets SellPrice on every good, per §4.D's
// sell-at-destination formula. When destPresent is false every SellPrice
// is set to nil, per the data model's invariant for an Unset destination.
func PriceSell(table *goods.Table, cat *catalog.Catalog, destClasses world.ClassSet, buyerSkill, sellerSkill int16, destPresent bool, rng *rand.Rand) {
	for i := range table.Goods {
		g := &table.Goods[i]
		if !destPresent {
			g.SellPrice = nil
			continue
		}
		entry, ok := cat.Get(g.SourceIndex)
		if !ok {
			g.SellPrice = nil
			continue
		}
		roll := dice.Roll3D6(rng)
		m := roll - int(buyerSkill) + int(sellerSkill) -
			int(SumDM(entry.PurchaseDM, destClasses)) + int(SumDM(entry.SaleDM, destClasses))
		price := roundToCredits(g.BaseCost, SellMultiplier(m))
		g.SellPrice = &price
	}
}

// SortByDiscount sorts the table ascending by buy_cost/base_cost, per
// §4.D's final step.
func SortByDiscount(table *goods.Table) {
	sort.SliceStable(table.Goods, func(i, j int) bool {
		return discountRatio(table.Goods[i]) < discountRatio(table.Goods[j])
	})
}

func discountRatio(g goods.Good) float64 {
	if g.BaseCost == 0 {
		return math.Inf(1)
	}
	return float64(g.BuyCost) / float64(g.BaseCost)
}
