package handler

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
)

const AttrOrderID = "data-order-id"

type Order struct {
	reconciler StatusChanger
	validator  Validator
}

type StatusChanger interface {
	ChangeStatus(ctx context.Context, orderID string, status entity.OrderStatus) error
}

func NewOrder(r StatusChanger, v Validator) *Order {
	return &Order{
		reconciler: r,
		validator:  v,
	}
}

// ChangeStatus обрабатывает выбор нового статуса в строке заказа.
// Идентификатор заказа берется из атрибута data-order-id, ключ статуса -
// из значения элемента.
func (h *Order) ChangeStatus(ctx context.Context, e Event) error {
	orderID, err := readAttr(e, AttrOrderID)
	if err != nil {
		return err
	}

	req := StatusChangeRequest{OrderID: orderID, Status: e.Target.Value}
	if err := h.validator.Struct(ctx, req); err != nil {
		return fmt.Errorf("invalid status change for order %s: %w", orderID, err)
	}

	return h.reconciler.ChangeStatus(ctx, req.OrderID, entity.OrderStatus(req.Status))
}
