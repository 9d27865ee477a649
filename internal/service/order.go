package service

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
	"github.com/ivanpodgorny/lieferspatz/internal/metrics"
	"sync"
)

// Order согласует отображаемое состояние заказа с ответом сервера.
// Статус на странице меняется только после ответа сервера.
type Order struct {
	updater StatusUpdater
	display Display
	seq     map[string]uint64
	applied map[string]uint64
	mu      sync.Mutex
}

type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID, label string) (entity.StatusChangeResponse, error)
}

type Display interface {
	SetText(id, text string) bool
}

func NewOrder(u StatusUpdater, d Display) *Order {
	return &Order{
		updater: u,
		display: d,
		seq:     map[string]uint64{},
		applied: map[string]uint64{},
	}
}

// ChangeStatus отправляет запрос на смену статуса заказа и применяет ответ
// сервера к статусу и балансам покупателя и ресторана. Балансы обновляются,
// только если присутствуют в ответе. Если для заказа уже применен ответ на
// более поздний запрос, ответ отбрасывается. При ошибке страница не меняется.
func (s *Order) ChangeStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	label, ok := status.Label()
	if !ok {
		return fmt.Errorf("%w: %q", inerr.ErrUnknownOrderStatus, status)
	}

	n := s.next(orderID)

	resp, err := s.updater.UpdateOrderStatus(ctx, orderID, label)
	if err != nil {
		return fmt.Errorf("update status of order %s: %w", orderID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= s.applied[orderID] {
		metrics.StaleResponsesTotal.Inc()

		return nil
	}
	s.applied[orderID] = n

	if !s.display.SetText(entity.OrderStatusNode(orderID), resp.OrderStatus) {
		return fmt.Errorf("%w: %s", inerr.ErrNodeNotFound, entity.OrderStatusNode(orderID))
	}
	if resp.CustomerBalance.Valid {
		s.display.SetText(entity.CustomerBalanceNode(orderID), entity.CustomerBalanceText(resp.CustomerBalance.Decimal))
	}
	if resp.RestaurantBalance.Valid {
		s.display.SetText(entity.RestaurantBalanceNode(orderID), entity.RestaurantBalanceText(resp.RestaurantBalance.Decimal))
	}

	return nil
}

func (s *Order) next(orderID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq[orderID]++

	return s.seq[orderID]
}
