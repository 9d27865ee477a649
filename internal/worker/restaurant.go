package worker

import (
	"context"
	"go.uber.org/zap"
	"sync"
	"time"
)

// RestaurantPoller периодически обновляет список ресторанов на странице.
type RestaurantPoller struct {
	refresher Refresher
	log       *zap.Logger
	interval  time.Duration
	wg        *sync.WaitGroup
}

type Refresher interface {
	Refresh(ctx context.Context) error
}

func NewRestaurantPoller(r Refresher, log *zap.Logger, interval time.Duration, wg *sync.WaitGroup) *RestaurantPoller {
	return &RestaurantPoller{
		refresher: r,
		log:       log,
		interval:  interval,
		wg:        wg,
	}
}

func (p *RestaurantPoller) Do(ctx context.Context) {
	p.wg.Add(1)

	go p.worker(ctx)
}

func (p *RestaurantPoller) worker(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.refresher.Refresh(ctx); err != nil {
				p.log.Error("error fetching restaurants", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}
