// Package goods implements §4.C: given a world's trade classes and
// population, it rolls which catalog entries are available and in what
// quantity.
package goods

import (
	"math/rand"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/dice"
	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

// Good is one row of an AvailableGoodsTable. SellPrice is nil until the
// pricing engine (internal/pricing) fills it in; Purchased is a
// client-owned field the server only round-trips.
type Good struct {
	SourceIndex int
	Name        string
	Quantity    int64
	Purchased   int64
	BaseCost    int64
	BuyCost     int64
	SellPrice   *int64
}

// Table is an AvailableGoodsTable: an ordered sequence of Goods, unique by
// SourceIndex.
type Table struct {
	Goods []Good
}

// IndexOf returns the position of the good with the given source index, or
// -1 if absent.
func (t *Table) IndexOf(sourceIndex int) int {
	for i, g := range t.Goods {
		if g.SourceIndex == sourceIndex {
			return i
		}
	}
	return -1
}

// insert adds qty to an existing entry sharing sourceIndex, or appends a
// new row — the duplicate-consolidation rule from §4.C step 4.
func (t *Table) insert(e catalog.Entry, qty int64) {
	if i := t.IndexOf(e.Index); i >= 0 {
		t.Goods[i].Quantity += qty
		return
	}
	t.Goods = append(t.Goods, Good{
		SourceIndex: e.Index,
		Name:        e.Name,
		Quantity:    qty,
		BaseCost:    e.BaseCost,
	})
}

// populationAdjustment implements §4.C step 3's population-driven add-on:
// -3 at pop<=3, +3 at pop>=9, 0 otherwise.
func populationAdjustment(population int) int64 {
	switch {
	case population <= 3:
		return -3
	case population >= 9:
		return 3
	default:
		return 0
	}
}

func rollQuantity(rng *rand.Rand, q catalog.Quantity, population int) int64 {
	rolled := int64(dice.Roll(rng, q.Dice)) * int64(q.Multiplier)
	return rolled + populationAdjustment(population)
}

// passesAvailability implements §4.C step 1's availability test.
func passesAvailability(e catalog.Entry, worldClasses world.ClassSet, illegalOK bool) bool {
	if e.Illegal() && !illegalOK {
		return false
	}
	if e.All {
		return true
	}
	return e.Availability.Intersects(worldClasses)
}

// Generate runs §4.C's algorithm: a deterministic pass over the full
// catalog followed by `population` additional random rolls, producing an
// AvailableGoodsTable with duplicates consolidated. Quantities are not
// clamped to zero (§9 design note 3) and may end up negative.
func Generate(cat *catalog.Catalog, worldClasses world.ClassSet, population int, illegalOK bool, rng *rand.Rand) Table {
	var table Table

	for _, e := range cat.All() {
		if !passesAvailability(e, worldClasses, illegalOK) {
			continue
		}
		table.insert(e, rollQuantity(rng, e.Quantity, population))
	}

	for i := 0; i < population; i++ {
		tensMax := 5
		if illegalOK {
			tensMax = 6
		}
		tens := rng.Intn(tensMax) + 1
		ones := rng.Intn(6) + 1
		index := tens*10 + ones

		e, ok := cat.Get(index)
		if !ok {
			continue
		}
		if e.Illegal() && !illegalOK {
			continue
		}
		table.insert(e, rollQuantity(rng, e.Quantity, population))
	}

	return table
}
