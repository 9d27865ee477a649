package service

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
)

type Balance struct {
	provider BalanceProvider
	modal    Modal
}

type BalanceProvider interface {
	GetBalance(ctx context.Context) (entity.Balance, error)
}

type Modal interface {
	ShowModal(text string)
	HideModal()
}

func NewBalance(p BalanceProvider, m Modal) *Balance {
	return &Balance{
		provider: p,
		modal:    m,
	}
}

// Show запрашивает баланс пользователя и показывает его в модальном окне.
// Текст ошибки, полученный от сервера, тоже показывается в окне, а сетевая
// ошибка только возвращается.
func (s *Balance) Show(ctx context.Context) error {
	balance, err := s.provider.GetBalance(ctx)
	if err != nil {
		return fmt.Errorf("get balance: %w", err)
	}

	if balance.Error != "" {
		s.modal.ShowModal("Error: " + balance.Error)

		return nil
	}

	if !balance.Amount.Valid {
		return fmt.Errorf("get balance: %w: no amount in response", inerr.ErrUnexpectedResponse)
	}

	s.modal.ShowModal("Your balance is: " + balance.Amount.Decimal.String() + " €")

	return nil
}

func (s *Balance) Close() {
	s.modal.HideModal()
}
