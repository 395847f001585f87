package passengers

import (
	"math/rand"
	"testing"

	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

func TestDiceCountTableBoundaries(t *testing.T) {
	cases := map[int]int{
		-5: 0, 1: 0,
		2: 1, 3: 1,
		4: 2, 6: 2,
		7: 3, 10: 3,
		11: 4, 13: 4,
		14: 5, 15: 5,
		16: 6, 17: 7, 18: 8, 19: 9,
		20: 10, 99: 10,
	}
	for roll, want := range cases {
		if got := diceCountForRoll(roll); got != want {
			t.Errorf("diceCountForRoll(%d) = %d, want %d", roll, got, want)
		}
	}
}

func TestGenerateFreightLotsSortedDescending(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	origin := Endpoint{Population: 9, Starport: 'A', Zone: world.ZoneGreen, TechLevel: 10}
	dest := Endpoint{Population: 8, Starport: 'A', Zone: world.ZoneGreen, TechLevel: 10}

	lot := Generate(origin, dest, 2, 1, rng)

	for i := 1; i < len(lot.FreightLots); i++ {
		if lot.FreightLots[i].Size > lot.FreightLots[i-1].Size {
			t.Fatalf("freight lots not sorted descending at index %d: %+v", i, lot.FreightLots)
		}
	}
}

func TestGenerateNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	origin := Endpoint{Population: 1, Starport: 'X', Zone: world.ZoneRed, TechLevel: 2}
	dest := Endpoint{Population: 0, Starport: 'X', Zone: world.ZoneRed, TechLevel: 1}

	lot := Generate(origin, dest, 8, 0, rng)
	if lot.High < 0 || lot.Medium < 0 || lot.Basic < 0 || lot.Low < 0 {
		t.Fatalf("negative passenger counts: %+v", lot)
	}
	for _, fl := range lot.FreightLots {
		if fl.Size <= 0 {
			t.Fatalf("non-positive freight lot size: %+v", fl)
		}
	}
}
