package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
	"go.uber.org/zap"
	"io"
	"strings"
)

type Func func(ctx context.Context, e Event) error

// Route строка таблицы обработчиков.
type Route struct {
	Event    EventType
	Selector Selector
	Handler  Func
}

// Dispatcher передает события обработчикам по таблице, построенной один раз
// при запуске. Ошибки обработчиков записываются в лог и дальше не уходят.
type Dispatcher struct {
	routes []Route
	log    *zap.Logger
}

func NewDispatcher(log *zap.Logger, routes ...Route) *Dispatcher {
	return &Dispatcher{
		routes: routes,
		log:    log,
	}
}

// Dispatch вызывает обработчики всех подходящих маршрутов по порядку.
// Ошибка одного обработчика не мешает вызову остальных, все ошибки
// возвращаются вместе.
func (d *Dispatcher) Dispatch(ctx context.Context, e Event) error {
	var (
		matched bool
		errs    []error
	)
	for _, r := range d.routes {
		if r.Event != e.Type || !r.Selector.Match(e.Target) {
			continue
		}

		matched = true
		if err := r.Handler(ctx, e); err != nil {
			errs = append(errs, fmt.Errorf("%s %s: %w", e.Type, r.Selector, err))
		}
	}

	if !matched {
		return inerr.ErrNoRoute
	}

	return errors.Join(errs...)
}

// Serve читает события построчно и обрабатывает их до конца ввода или отмены
// контекста. Пустые строки и строки, начинающиеся с "#", пропускаются.
func (d *Dispatcher) Serve(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errCh <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errCh:
					return err
				default:
					return nil
				}
			}

			d.serveLine(ctx, line)
		}
	}
}

func (d *Dispatcher) serveLine(ctx context.Context, line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return
	}

	e, err := ParseEvent(line)
	if err != nil {
		d.log.Warn("malformed event", zap.Error(err))

		return
	}

	if err := d.Dispatch(ctx, e); err != nil {
		d.log.Error("event handling failed", zap.String("event", line), zap.Error(err))
	}
}
