package pipeline

import (
	"github.com/everforgeworks/traveller-tradehub/internal/goods"
	"github.com/everforgeworks/traveller-tradehub/internal/passengers"
	"github.com/everforgeworks/traveller-tradehub/internal/wire"
	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

func toGoodsDTO(table goods.Table) wire.GoodsTableDTO {
	out := make([]wire.AvailableGoodDTO, len(table.Goods))
	for i, g := range table.Goods {
		out[i] = wire.AvailableGoodDTO{
			Name:        g.Name,
			Quantity:    g.Quantity,
			Purchased:   g.Purchased,
			BaseCost:    g.BaseCost,
			BuyCost:     g.BuyCost,
			SellPrice:   g.SellPrice,
			SourceIndex: g.SourceIndex,
		}
	}
	return wire.GoodsTableDTO{Goods: out}
}

func fromGoodsDTO(dto wire.GoodsTableDTO) goods.Table {
	out := make([]goods.Good, len(dto.Goods))
	for i, g := range dto.Goods {
		out[i] = goods.Good{
			SourceIndex: g.SourceIndex,
			Name:        g.Name,
			Quantity:    g.Quantity,
			Purchased:   g.Purchased,
			BaseCost:    g.BaseCost,
			BuyCost:     g.BuyCost,
			SellPrice:   g.SellPrice,
		}
	}
	return goods.Table{Goods: out}
}

func toPassengersDTO(lot passengers.Lot) *wire.PassengersDTO {
	freight := make([]wire.FreightLotDTO, len(lot.FreightLots))
	for i, fl := range lot.FreightLots {
		freight[i] = wire.FreightLotDTO{Size: int32(fl.Size)}
	}
	return &wire.PassengersDTO{
		High:        int32(lot.High),
		Medium:      int32(lot.Medium),
		Basic:       int32(lot.Basic),
		Low:         int32(lot.Low),
		FreightLots: freight,
	}
}

func toWorldDTO(w world.World) wire.WorldDTO {
	classes := w.Classes.Slice()
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = string(c)
	}
	return wire.WorldDTO{
		Name:         w.Name,
		UWP:          w.UWP,
		TradeClasses: names,
	}
}
