// Package pipeline implements §4.F: the Recompute Pipeline that turns a
// client's incoming SessionState into the next server-authoritative one,
// regenerating only the parts whose client-owned inputs actually changed.
package pipeline

import (
	"math/rand"

	"github.com/everforgeworks/traveller-tradehub/internal/catalog"
	"github.com/everforgeworks/traveller-tradehub/internal/goods"
	"github.com/everforgeworks/traveller-tradehub/internal/passengers"
	"github.com/everforgeworks/traveller-tradehub/internal/pricing"
	"github.com/everforgeworks/traveller-tradehub/internal/wire"
	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

// Recompute runs §4.F's eight-step algorithm. prev is nil on a session's
// first write. cat is the process-wide trade catalog. The function is pure
// given rng; it performs no I/O.
func Recompute(prev *wire.SessionState, incoming wire.SessionState, cat *catalog.Catalog, rng *rand.Rand) wire.SessionState {
	out := incoming

	originWorld, originOK := parseEndpoint(incoming.OriginWorldName, incoming.OriginUWP, true)
	destWorld, destOK := parseEndpoint(incoming.DestWorldName, incoming.DestUWP, false)

	originZone := zoneOf(incoming.OriginZone)
	destZone := zoneOf(incoming.DestZone)
	if originOK {
		originWorld.Classes = world.ApplyZone(originWorld.Classes, originZone)
	}
	if destOK {
		destWorld.Classes = world.ApplyZone(destWorld.Classes, destZone)
	}

	distance := 0
	if incoming.OriginCoords != nil && incoming.DestCoords != nil {
		distance = hexDistance(*incoming.OriginCoords, *incoming.DestCoords)
	}

	originChanged, destChanged, skillsChanged := diff(prev, incoming)

	if originChanged && originOK {
		out.AvailableGoods = toGoodsDTO(goods.Generate(cat, originWorld.Classes, originWorld.Pop, incoming.IllegalGoods, rng))
	} else if !originOK {
		out.AvailableGoods = wire.GoodsTableDTO{Goods: []wire.AvailableGoodDTO{}}
	}

	if (originChanged || destChanged || skillsChanged) && originOK {
		table := fromGoodsDTO(out.AvailableGoods)
		pricing.PriceBuy(&table, cat, originWorld.Classes, incoming.BuyerBrokerSkill, incoming.SellerBrokerSkill, rng)
		pricing.PriceSell(&table, cat, destWorld.Classes, incoming.BuyerBrokerSkill, incoming.SellerBrokerSkill, destOK, rng)
		pricing.SortByDiscount(&table)
		out.AvailableGoods = toGoodsDTO(table)

		manifestTable := fromGoodsDTO(wire.GoodsTableDTO{Goods: out.ShipManifest.TradeGoods})
		pricing.PriceBuy(&manifestTable, cat, originWorld.Classes, incoming.BuyerBrokerSkill, incoming.SellerBrokerSkill, rng)
		pricing.PriceSell(&manifestTable, cat, destWorld.Classes, incoming.BuyerBrokerSkill, incoming.SellerBrokerSkill, destOK, rng)
		out.ShipManifest.TradeGoods = toGoodsDTO(manifestTable).Goods
	}

	if originOK && destOK && (originChanged || destChanged || skillsChanged) {
		originEndpoint := passengers.Endpoint{Population: originWorld.Pop, Starport: originWorld.Starport, Zone: originZone, TechLevel: originWorld.Tech}
		destEndpoint := passengers.Endpoint{Population: destWorld.Pop, Starport: destWorld.Starport, Zone: destZone, TechLevel: destWorld.Tech}
		lot := passengers.Generate(originEndpoint, destEndpoint, distance, incoming.StewardSkill, rng)
		out.AvailablePassengers = toPassengersDTO(lot)
	} else if !originOK || !destOK {
		out.AvailablePassengers = nil
	}

	if originOK {
		dto := toWorldDTO(originWorld)
		out.OriginWorld = &dto
	} else {
		out.OriginWorld = nil
	}
	if destOK {
		dto := toWorldDTO(destWorld)
		out.DestWorld = &dto
	} else {
		out.DestWorld = nil
	}

	return out
}

func parseEndpoint(name, uwp string, isMainworld bool) (world.World, bool) {
	if name == "" || len(uwp) != 9 {
		return world.World{}, false
	}
	w, err := world.Parse(name, uwp, isMainworld)
	if err != nil {
		return world.World{}, false
	}
	return w, true
}

func zoneOf(s string) world.Zone {
	switch world.Zone(s) {
	case world.ZoneAmber:
		return world.ZoneAmber
	case world.ZoneRed:
		return world.ZoneRed
	default:
		return world.ZoneGreen
	}
}

func coordsEqual(a, b *[2]int32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func diff(prev *wire.SessionState, incoming wire.SessionState) (originChanged, destChanged, skillsChanged bool) {
	if prev == nil {
		return true, true, true
	}
	originChanged = prev.OriginWorldName != incoming.OriginWorldName ||
		prev.OriginUWP != incoming.OriginUWP ||
		!coordsEqual(prev.OriginCoords, incoming.OriginCoords) ||
		prev.OriginZone != incoming.OriginZone ||
		prev.IllegalGoods != incoming.IllegalGoods
	destChanged = prev.DestWorldName != incoming.DestWorldName ||
		prev.DestUWP != incoming.DestUWP ||
		!coordsEqual(prev.DestCoords, incoming.DestCoords) ||
		prev.DestZone != incoming.DestZone
	skillsChanged = prev.BuyerBrokerSkill != incoming.BuyerBrokerSkill ||
		prev.SellerBrokerSkill != incoming.SellerBrokerSkill ||
		prev.StewardSkill != incoming.StewardSkill
	return
}

// hexDistance implements §4.F step 3's cube-coordinate distance on
// odd-column offset hexes. Coordinates are [col, row].
func hexDistance(a, b [2]int32) int {
	ax, az := cubeFromOffset(a)
	bx, bz := cubeFromOffset(b)
	ay := -ax - az
	by := -bx - bz
	dx := abs(ax - bx)
	dy := abs(ay - by)
	dz := abs(az - bz)
	return (dx + dy + dz) / 2
}

func cubeFromOffset(c [2]int32) (int, int) {
	col := int(c[0])
	row := int(c[1])
	x := col
	z := row - (col+(col&1))/2
	return x, z
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
