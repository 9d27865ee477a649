package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/client"
	"github.com/ivanpodgorny/lieferspatz/internal/config"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	"github.com/ivanpodgorny/lieferspatz/internal/handler"
	"github.com/ivanpodgorny/lieferspatz/internal/logger"
	"github.com/ivanpodgorny/lieferspatz/internal/metrics"
	"github.com/ivanpodgorny/lieferspatz/internal/middleware"
	"github.com/ivanpodgorny/lieferspatz/internal/service"
	"github.com/ivanpodgorny/lieferspatz/internal/session"
	"github.com/ivanpodgorny/lieferspatz/internal/socket"
	"github.com/ivanpodgorny/lieferspatz/internal/validator"
	"github.com/ivanpodgorny/lieferspatz/internal/view"
	"github.com/ivanpodgorny/lieferspatz/internal/worker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func main() {
	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cfg, err := config.NewBuilder().LoadDotEnv().LoadFlags().LoadEnv().Build()
	if err != nil {
		return err
	}

	l, err := logger.New(cfg.LogLevel(), cfg.LogFormat())
	if err != nil {
		return err
	}
	defer func() {
		_ = l.Sync()
	}()

	state, err := session.LoadInitialState(cfg.InitialStatePath())
	if err != nil {
		return err
	}

	v, err := validator.NewDefault()
	if err != nil {
		return err
	}

	var (
		sess = session.Open(session.NewMemoryStorage(), state)
		doc  = view.NewDocument(func(c view.Change) {
			l.Info("page changed", zap.String("kind", string(c.Kind)), zap.String("target", c.Target), zap.String("value", c.Value))
		})
		lc = client.NewLieferspatz(cfg.ServerAddress(), cfg.RequestTimeout(), middleware.TabSession(sess))
		sc = socket.New(cfg.SocketAddress(), l.Named("socket"))
		ors = service.NewOrder(lc, doc)
		bs = service.NewBalance(lc, doc)
		cs = service.NewCart(lc, doc)
		ls = service.NewLogin(lc, sess, doc, v)
		rs = service.NewRestaurant(lc, doc)
		ns = service.NewNotification(sess, doc)
		d  = handler.NewDispatcher(l.Named("handler"), handler.Routes(handler.Handlers{
			Order:   handler.NewOrder(ors, v),
			Balance: handler.NewBalance(bs),
			Cart:    handler.NewCart(cs),
			Login:   handler.NewLogin(ls),
		})...)
		wg = &sync.WaitGroup{}
	)
	defer func() {
		if err := sess.Close(); err != nil {
			l.Warn("session close failed", zap.Error(err))
		}
	}()

	if err := doc.Load(state); err != nil {
		return err
	}
	if err := cs.UpdateDisplay(state.CartItems); err != nil {
		return err
	}
	l.Info(
		"page loaded",
		zap.String("page", state.PageName),
		zap.Int("user_id", sess.UserID()),
		zap.String("tab_session_id", sess.TabSessionID()),
	)

	sc.OnConnect(func(c *socket.Client) error {
		return ns.Join(c)
	})
	sc.On(service.EventNewOrder, func(data json.RawMessage) error {
		e := entity.NewOrderEvent{}
		if err := json.Unmarshal(data, &e); err != nil {
			return fmt.Errorf("decode %s: %w", service.EventNewOrder, err)
		}
		ns.NewOrder(e)

		return nil
	})

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(sigCtx)
	defer func() {
		cancel()
		wg.Wait()
	}()

	if state.PageName == entity.PageRestaurants {
		worker.NewRestaurantPoller(rs, l.Named("restaurants"), cfg.PollInterval(), wg).Do(ctx)
	}
	worker.NewFlashFader(doc, l.Named("flash"), cfg.FlashTTL(), wg).Do(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sc.Run(gctx)
	})
	if addr := cfg.MetricsAddress(); addr != "" {
		g.Go(func() error {
			return metrics.Serve(gctx, addr)
		})
	}
	g.Go(func() error {
		defer cancel()

		return d.Serve(gctx, os.Stdin)
	})

	return g.Wait()
}
