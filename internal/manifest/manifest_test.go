package manifest

import (
	"testing"

	"github.com/everforgeworks/traveller-tradehub/internal/goods"
)

func TestUpdateTradeGoodInsertsAndRemoves(t *testing.T) {
	var m Manifest
	good := goods.Good{SourceIndex: 11, Name: "Common Electronics", BaseCost: 20000, BuyCost: 21000}

	m.UpdateTradeGood(good, 5)
	if len(m.TradeGoods) != 1 || m.TradeGoods[0].Purchased != 5 {
		t.Fatalf("expected one good with purchased=5, got %+v", m.TradeGoods)
	}
	if m.SellPlan[11] != 0 {
		t.Fatalf("expected fresh sell plan entry of 0, got %d", m.SellPlan[11])
	}

	m.UpdateTradeGood(good, 0)
	if len(m.TradeGoods) != 0 {
		t.Fatalf("expected good removed at quantity 0, got %+v", m.TradeGoods)
	}
	if _, ok := m.SellPlan[11]; ok {
		t.Fatalf("expected sell plan entry removed alongside good")
	}
}

func TestSetAndGetSellAmountClamps(t *testing.T) {
	var m Manifest
	good := goods.Good{SourceIndex: 21, BaseCost: 1000}
	m.UpdateTradeGood(good, 10)

	m.SetSellAmount(21, 999)
	if got := m.GetSellAmount(21); got != 10 {
		t.Fatalf("expected sell amount clamped to purchased=10, got %d", got)
	}

	m.SetSellAmount(21, -5)
	if got := m.GetSellAmount(21); got != 0 {
		t.Fatalf("expected sell amount clamped to 0, got %d", got)
	}
}

func TestCommitSaleByIndexReducesAndRemoves(t *testing.T) {
	var m Manifest
	good := goods.Good{SourceIndex: 31, BaseCost: 500}
	m.UpdateTradeGood(good, 20)
	m.SetSellAmount(31, 5)

	m.CommitSaleByIndex(31)
	if len(m.TradeGoods) != 1 || m.TradeGoods[0].Purchased != 15 {
		t.Fatalf("expected purchased reduced to 15, got %+v", m.TradeGoods)
	}
	if m.SellPlan[31] != 0 {
		t.Fatalf("expected sell plan reset to 0, got %d", m.SellPlan[31])
	}

	m.SetSellAmount(31, 15)
	m.CommitSaleByIndex(31)
	if len(m.TradeGoods) != 0 {
		t.Fatalf("expected good fully sold and removed, got %+v", m.TradeGoods)
	}
}

func TestProcessTradesAccumulatesProfitAndResets(t *testing.T) {
	var m Manifest
	m.HighPassengers = 2
	m.FreightLotIndices = []int{0, 1}

	m.ProcessTrades(3, false)

	wantPassenger := highCost[3] * 2
	wantFreight := freightCost[3] * 2
	if m.Profit != wantPassenger+wantFreight {
		t.Fatalf("expected profit %d, got %d", wantPassenger+wantFreight, m.Profit)
	}
	if m.HighPassengers != 0 || len(m.FreightLotIndices) != 0 {
		t.Fatalf("expected passengers/freight reset, got %+v", m)
	}
}

func TestProcessTradesAppliesSellPlanAndGoodsProfit(t *testing.T) {
	var m Manifest
	sellPrice := int64(150)
	good := goods.Good{SourceIndex: 41, BaseCost: 100, BuyCost: 100, SellPrice: &sellPrice}
	m.UpdateTradeGood(good, 10)
	m.SetSellAmount(41, 4)

	m.ProcessTrades(1, true)

	if len(m.TradeGoods) != 1 || m.TradeGoods[0].Purchased != 6 {
		t.Fatalf("expected purchased reduced to 6, got %+v", m.TradeGoods)
	}
	wantGoodsProfit := int64(4)*sellPrice - int64(10)*100
	if m.Profit != wantGoodsProfit {
		t.Fatalf("expected goods profit %d, got %d", wantGoodsProfit, m.Profit)
	}
	if len(m.SellPlan) != 0 {
		t.Fatalf("expected sell plan cleared, got %+v", m.SellPlan)
	}
	if m.TradeGoods[0].BuyCost != 0 {
		t.Fatalf("expected buy cost zeroed after processing, got %d", m.TradeGoods[0].BuyCost)
	}
}
