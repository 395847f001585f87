// Package manifest implements the ship manifest revenue accounting
// restored in SPEC_FULL.md §9.1: passenger/freight revenue by distance,
// and the sell-plan commit workflow clients use to realize profit.
package manifest

import "github.com/everforgeworks/traveller-tradehub/internal/goods"

// highCost, mediumCost, basicCost, lowCost, and freightCost give revenue in
// credits per unit (passenger or freight lot) indexed by jump distance in
// parsecs, 1-6; index 0 is unused.
var highCost = [7]int64{0, 9000, 14000, 21000, 34000, 60000, 210000}
var mediumCost = [7]int64{0, 6500, 10000, 14000, 23000, 40000, 130000}
var basicCost = [7]int64{0, 2000, 3000, 5000, 8000, 14000, 55000}
var lowCost = [7]int64{0, 700, 1300, 2200, 3900, 7200, 27000}
var freightCost = [7]int64{0, 1000, 1600, 2600, 4400, 8500, 32000}

// Manifest is the Ship Manifest entity from §3: passenger counts, carried
// freight lot indices, speculative trade goods, a per-good sell plan, and
// accumulated profit.
type Manifest struct {
	HighPassengers    int32
	MediumPassengers  int32
	BasicPassengers   int32
	LowPassengers     int32
	FreightLotIndices []int
	TradeGoods        []goods.Good
	SellPlan          map[int]int32
	Profit            int64
}

func clampDistance(distance int) int {
	if distance < 1 {
		return 1
	}
	if distance > 6 {
		return 6
	}
	return distance
}

// PassengerRevenue sums revenue across all four passenger classes at the
// given jump distance, clamped to 1-6 parsecs.
func (m *Manifest) PassengerRevenue(distance int) int64 {
	d := clampDistance(distance)
	return highCost[d]*int64(m.HighPassengers) +
		mediumCost[d]*int64(m.MediumPassengers) +
		basicCost[d]*int64(m.BasicPassengers) +
		lowCost[d]*int64(m.LowPassengers)
}

// FreightRevenue returns flat per-lot revenue for every carried freight lot
// at the given jump distance.
func (m *Manifest) FreightRevenue(distance int) int64 {
	d := clampDistance(distance)
	return freightCost[d] * int64(len(m.FreightLotIndices))
}

func (m *Manifest) indexOf(sourceIndex int) int {
	for i, g := range m.TradeGoods {
		if g.SourceIndex == sourceIndex {
			return i
		}
	}
	return -1
}

// UpdateTradeGood sets the purchased quantity for good on the manifest,
// inserting it if absent and removing it if quantity drops to zero or
// below, mirroring the original's update_trade_good.
func (m *Manifest) UpdateTradeGood(good goods.Good, quantity int64) {
	if m.SellPlan == nil {
		m.SellPlan = map[int]int32{}
	}
	pos := m.indexOf(good.SourceIndex)
	if pos >= 0 {
		if quantity <= 0 {
			m.TradeGoods = append(m.TradeGoods[:pos], m.TradeGoods[pos+1:]...)
			delete(m.SellPlan, good.SourceIndex)
			return
		}
		good.Purchased = quantity
		m.TradeGoods[pos] = good
		planned := m.SellPlan[good.SourceIndex]
		if int64(planned) > quantity {
			planned = int32(quantity)
		}
		if planned < 0 {
			planned = 0
		}
		m.SellPlan[good.SourceIndex] = planned
		return
	}
	if quantity > 0 {
		good.Purchased = quantity
		m.TradeGoods = append(m.TradeGoods, good)
		m.SellPlan[good.SourceIndex] = 0
	}
}

// SetSellAmount clamps amount to [0, purchased] and records it as the
// planned sell quantity for good.
func (m *Manifest) SetSellAmount(sourceIndex int, amount int32) {
	pos := m.indexOf(sourceIndex)
	if pos < 0 {
		return
	}
	if m.SellPlan == nil {
		m.SellPlan = map[int]int32{}
	}
	purchased := int32(m.TradeGoods[pos].Purchased)
	clamped := clampInt32(amount, 0, purchased)
	m.SellPlan[sourceIndex] = clamped
}

func clampInt32(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetSellAmount returns the planned sell quantity for sourceIndex, clamped
// to the good's current purchased quantity.
func (m *Manifest) GetSellAmount(sourceIndex int) int32 {
	purchased := int32(0)
	if pos := m.indexOf(sourceIndex); pos >= 0 {
		purchased = int32(m.TradeGoods[pos].Purchased)
	}
	return clampInt32(m.SellPlan[sourceIndex], 0, purchased)
}

// CommitSaleByIndex converts the planned sell amount for sourceIndex into a
// quantity reduction, removing the good entirely if it reaches zero, and
// resets that entry's plan to zero.
func (m *Manifest) CommitSaleByIndex(sourceIndex int) {
	pos := m.indexOf(sourceIndex)
	if pos < 0 {
		delete(m.SellPlan, sourceIndex)
		return
	}
	sellAmt := m.GetSellAmount(sourceIndex)
	if m.SellPlan == nil {
		m.SellPlan = map[int]int32{}
	}
	if sellAmt <= 0 {
		m.SellPlan[sourceIndex] = 0
		return
	}
	newQty := m.TradeGoods[pos].Purchased - int64(sellAmt)
	if newQty < 0 {
		newQty = 0
	}
	if newQty == 0 {
		m.TradeGoods = append(m.TradeGoods[:pos], m.TradeGoods[pos+1:]...)
	} else {
		m.TradeGoods[pos].Purchased = newQty
	}
	m.SellPlan[sourceIndex] = 0
}

// CommitAllSales runs CommitSaleByIndex for every good currently on the
// manifest.
func (m *Manifest) CommitAllSales() {
	indices := make([]int, len(m.TradeGoods))
	for i, g := range m.TradeGoods {
		indices[i] = g.SourceIndex
	}
	for _, idx := range indices {
		m.CommitSaleByIndex(idx)
	}
}

func (m *Manifest) tradeGoodsCost() int64 {
	var total int64
	for _, g := range m.TradeGoods {
		total += g.Purchased * g.BuyCost
	}
	return total
}

func (m *Manifest) tradeGoodsProceeds() int64 {
	var total int64
	for _, g := range m.TradeGoods {
		if g.SellPrice == nil {
			continue
		}
		toSell := clampInt32(m.SellPlan[g.SourceIndex], 0, int32(g.Purchased))
		total += int64(toSell) * *g.SellPrice
	}
	return total
}

// ResetPassengersAndFreight clears passenger counts, freight selections,
// and the sell plan, leaving trade goods untouched.
func (m *Manifest) ResetPassengersAndFreight() {
	m.HighPassengers = 0
	m.MediumPassengers = 0
	m.BasicPassengers = 0
	m.LowPassengers = 0
	m.FreightLotIndices = nil
	m.SellPlan = map[int]int32{}
}

func (m *Manifest) zeroBuyCosts() {
	for i := range m.TradeGoods {
		m.TradeGoods[i].BuyCost = 0
	}
}

// ProcessTrades realizes one voyage's revenue: passenger and freight
// revenue at distance, plus goods profit when showSell is true, applies
// the sell plan against carried quantities, adds the total to accumulated
// Profit, then resets passengers/freight/sell-plan and zeroes buy costs
// for the next leg.
func (m *Manifest) ProcessTrades(distance int, showSell bool) {
	passengerRevenue := m.PassengerRevenue(distance)
	freightRevenue := m.FreightRevenue(distance)

	var goodsProfit int64
	if showSell {
		goodsProfit = m.tradeGoodsProceeds() - m.tradeGoodsCost()
	}

	for index, amount := range m.SellPlan {
		pos := m.indexOf(index)
		if pos < 0 {
			continue
		}
		newQty := m.TradeGoods[pos].Purchased - int64(amount)
		if newQty < 0 {
			newQty = 0
		}
		m.TradeGoods[pos].Purchased = newQty
	}
	filtered := m.TradeGoods[:0]
	for _, g := range m.TradeGoods {
		if g.Purchased > 0 {
			filtered = append(filtered, g)
		}
	}
	m.TradeGoods = filtered

	m.Profit += passengerRevenue + freightRevenue + goodsProfit

	m.ResetPassengersAndFreight()
	m.zeroBuyCosts()
}
