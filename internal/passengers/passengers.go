// Package passengers implements §4.E: given the endpoints of a route and a
// steward skill, produces passenger counts per class and sorted freight-lot
// sizes.
package passengers

import (
	"math/rand"
	"sort"

	"github.com/everforgeworks/traveller-tradehub/internal/dice"
	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

// FreightLot is a single cargo lot, sized in tons.
type FreightLot struct {
	Size int
}

// Lot is the AvailablePassengers entity from §3: passenger counts per
// class plus the route's freight lots, descending by size.
type Lot struct {
	High        int
	Medium      int
	Basic       int
	Low         int
	FreightLots []FreightLot
}

// Endpoint bundles the per-world inputs the generator needs for one side
// of a route.
type Endpoint struct {
	Population int
	Starport   byte
	Zone       world.Zone
	TechLevel  int
}

// Generate runs §4.E for both passenger and cargo classes given the two
// route endpoints, their parsec distance, and the crew's steward skill.
func Generate(origin, dest Endpoint, distanceParsecs int, stewardSkill int16, rng *rand.Rand) Lot {
	var lot Lot

	lot.High = passengerCount(origin, dest, distanceParsecs, stewardSkill, classHigh, rng)
	lot.Medium = passengerCount(origin, dest, distanceParsecs, stewardSkill, classMedium, rng)
	lot.Basic = passengerCount(origin, dest, distanceParsecs, stewardSkill, classBasic, rng)
	lot.Low = passengerCount(origin, dest, distanceParsecs, stewardSkill, classLow, rng)

	for _, cc := range []cargoClass{cargoMajor, cargoMinor, cargoIncidental} {
		n := cargoLotCount(origin, dest, distanceParsecs, cc, rng)
		for i := 0; i < n; i++ {
			lot.FreightLots = append(lot.FreightLots, FreightLot{Size: lotSize(cc, rng)})
		}
	}

	sort.SliceStable(lot.FreightLots, func(i, j int) bool {
		return lot.FreightLots[i].Size > lot.FreightLots[j].Size
	})

	return lot
}

type passengerClass int

const (
	classHigh passengerClass = iota
	classMedium
	classBasic
	classLow
)

type cargoClass int

const (
	cargoMajor cargoClass = iota
	cargoMinor
	cargoIncidental
)

func lotSize(cc cargoClass, rng *rand.Rand) int {
	switch cc {
	case cargoMajor:
		return dice.D6(rng) * 10
	case cargoMinor:
		return dice.D6(rng) * 5
	default:
		return dice.D6(rng)
	}
}

func starportModifier(starport byte) int {
	switch starport {
	case 'A':
		return 2
	case 'B':
		return 1
	case 'E':
		return -1
	case 'X':
		return -3
	default:
		return 0
	}
}

// diceCountForRoll maps a modified 2d6 roll to the number of d6 to sum for
// the final result, per §4.E's table.
func diceCountForRoll(roll int) int {
	switch {
	case roll <= 1:
		return 0
	case roll <= 3:
		return 1
	case roll <= 6:
		return 2
	case roll <= 10:
		return 3
	case roll <= 13:
		return 4
	case roll <= 15:
		return 5
	case roll == 16:
		return 6
	case roll == 17:
		return 7
	case roll == 18:
		return 8
	case roll == 19:
		return 9
	default:
		return 10
	}
}

func passengerCount(origin, dest Endpoint, distance int, stewardSkill int16, class passengerClass, rng *rand.Rand) int {
	roll := dice.Roll2D6(rng)
	roll += int(stewardSkill)

	switch class {
	case classHigh:
		roll -= 4
	case classLow:
		roll += 1
	}

	if origin.Population <= 1 {
		roll -= 4
	}
	if dest.Population <= 1 {
		roll -= 4
	}
	for _, pop := range []int{origin.Population, dest.Population} {
		switch {
		case pop >= 8:
			roll += 3
		case pop >= 6:
			roll += 1
		}
	}

	roll += starportModifier(origin.Starport)
	roll += starportModifier(dest.Starport)

	for _, zone := range []world.Zone{origin.Zone, dest.Zone} {
		switch zone {
		case world.ZoneAmber:
			roll += 1
		case world.ZoneRed:
			roll -= 4
		}
	}

	if distance > 1 {
		roll -= distance - 1
	}

	return dice.Roll(rng, diceCountForRoll(roll))
}

func cargoLotCount(origin, dest Endpoint, distance int, class cargoClass, rng *rand.Rand) int {
	roll := dice.Roll2D6(rng)

	switch class {
	case cargoMajor:
		roll -= 4
	case cargoIncidental:
		roll += 2
	}

	if origin.Population <= 1 {
		roll -= 4
	}
	if dest.Population <= 1 {
		roll -= 4
	}
	for _, pop := range []int{origin.Population, dest.Population} {
		switch {
		case pop >= 8:
			roll += 4
		case pop >= 6:
			roll += 2
		}
	}

	roll += starportModifier(origin.Starport)
	roll += starportModifier(dest.Starport)

	for _, tech := range []int{origin.TechLevel, dest.TechLevel} {
		switch {
		case tech <= 6:
			roll -= 1
		case tech >= 9:
			roll += 2
		}
	}

	for _, zone := range []world.Zone{origin.Zone, dest.Zone} {
		switch zone {
		case world.ZoneAmber:
			roll -= 2
		case world.ZoneRed:
			roll -= 6
		}
	}

	if distance > 1 {
		roll -= distance - 1
	}

	return dice.Roll(rng, diceCountForRoll(roll))
}
