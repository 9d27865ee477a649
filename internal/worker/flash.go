package worker

import (
	"context"
	"go.uber.org/zap"
	"sync"
	"time"
)

// FlashFader убирает флеш-сообщения со страницы через заданное время
// после загрузки.
type FlashFader struct {
	page FlashPage
	log  *zap.Logger
	ttl  time.Duration
	wg   *sync.WaitGroup
}

type FlashPage interface {
	Flashes() []string
	RemoveFlashes() int
}

func NewFlashFader(p FlashPage, log *zap.Logger, ttl time.Duration, wg *sync.WaitGroup) *FlashFader {
	return &FlashFader{
		page: p,
		log:  log,
		ttl:  ttl,
		wg:   wg,
	}
}

func (f *FlashFader) Do(ctx context.Context) {
	if len(f.page.Flashes()) == 0 {
		return
	}

	f.wg.Add(1)

	go f.worker(ctx)
}

func (f *FlashFader) worker(ctx context.Context) {
	defer f.wg.Done()

	timer := time.NewTimer(f.ttl)
	defer timer.Stop()

	select {
	case <-timer.C:
		n := f.page.RemoveFlashes()
		f.log.Debug("flash messages faded", zap.Int("count", n))
	case <-ctx.Done():
	}
}
