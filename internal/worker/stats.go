package worker

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gift_shop/internal/domain/entity"
	"gift_shop/pkg/contextx"
	"gift_shop/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type catalogSource interface {
	Catalog(ctx context.Context) ([]entity.Gift, error)
}

// StatsWorker периодически пересчитывает витринные метрики:
// количество лотов в продаже и минимальную цену по каждой редкости.
type StatsWorker struct {
	market   catalogSource
	interval time.Duration

	forSaleTotal prometheus.Gauge
	floorPrice   *prometheus.GaugeVec
}

func NewStatsWorker(
	market catalogSource,
	interval time.Duration,
	registerer prometheus.Registerer,
) *StatsWorker {
	factory := promauto.With(registerer)

	return &StatsWorker{
		market:   market,
		interval: interval,
		forSaleTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "gift_shop_gifts_for_sale_total",
			Help: "Number of gifts currently listed for sale",
		}),
		floorPrice: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "gift_shop_gift_floor_price_ton",
			Help: "Lowest listed price per rarity, in TON",
		}, []string{"rarity"}),
	}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый замер сразу, не дожидаясь тика.
	w.Collect(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.Collect(ctx)
		}
	}
}

// Collect снимает метрики с витрины. Отказ хранилища оставляет
// прошлые значения: устаревшая метрика полезнее обнулённой.
func (w *StatsWorker) Collect(ctx context.Context) {
	gifts, err := w.market.Catalog(ctx)
	if err != nil {
		logger(ctx).Error("failed to collect market stats", logx.Error(err))
		return
	}

	w.forSaleTotal.Set(float64(len(gifts)))

	w.floorPrice.Reset()

	floors := make(map[string]float64)
	for _, gift := range gifts {
		if gift.Price == nil {
			continue
		}

		rarity := gift.Rarity.String()
		if floor, ok := floors[rarity]; !ok || *gift.Price < floor {
			floors[rarity] = *gift.Price
		}
	}

	for rarity, floor := range floors {
		w.floorPrice.WithLabelValues(rarity).Set(floor)
	}
}
