package handler

import (
	"context"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
)

const (
	AttrItemID   = "data-item-id"
	AttrEmail    = "email"
	AttrPassword = "password"
)

type Balance struct {
	viewer BalanceViewer
}

type BalanceViewer interface {
	Show(ctx context.Context) error
	Close()
}

func NewBalance(v BalanceViewer) *Balance {
	return &Balance{viewer: v}
}

func (h *Balance) Show(ctx context.Context, _ Event) error {
	return h.viewer.Show(ctx)
}

// CloseModal закрывает окно баланса по кнопке закрытия или по клику на фон.
func (h *Balance) CloseModal(_ context.Context, _ Event) error {
	h.viewer.Close()

	return nil
}

type Cart struct {
	adder CartAdder
}

type CartAdder interface {
	Add(ctx context.Context, itemID string) error
}

func NewCart(a CartAdder) *Cart {
	return &Cart{adder: a}
}

func (h *Cart) Add(ctx context.Context, e Event) error {
	itemID, err := readAttr(e, AttrItemID)
	if err != nil {
		return err
	}

	return h.adder.Add(ctx, itemID)
}

type Login struct {
	submitter LoginSubmitter
}

type LoginSubmitter interface {
	Submit(ctx context.Context, form entity.LoginForm) error
}

func NewLogin(s LoginSubmitter) *Login {
	return &Login{submitter: s}
}

// Submit отправляет форму входа. Поля формы передаются атрибутами email и
// password, проверка полей выполняется при отправке.
func (h *Login) Submit(ctx context.Context, e Event) error {
	form := entity.LoginForm{
		Email:    e.Target.Attr(AttrEmail),
		Password: e.Target.Attr(AttrPassword),
	}

	return h.submitter.Submit(ctx, form)
}
