package service

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	"github.com/ivanpodgorny/lieferspatz/internal/view"
)

const itemAddedMessage = "Item added to cart!"

type Cart struct {
	client CartClient
	page   CartPage
}

type CartClient interface {
	AddToCart(ctx context.Context, itemID string) error
}

type CartPage interface {
	Alert(msg string)
	Reload()
	SetVisible(id string, visible bool) bool
	SetValue(id, value string) bool
}

func NewCart(c CartClient, p CartPage) *Cart {
	return &Cart{
		client: c,
		page:   p,
	}
}

// Add добавляет позицию меню в корзину, сообщает об этом пользователю
// и перезагружает страницу, чтобы отобразить корзину заново.
func (s *Cart) Add(ctx context.Context, itemID string) error {
	if err := s.client.AddToCart(ctx, itemID); err != nil {
		return fmt.Errorf("add item %s to cart: %w", itemID, err)
	}

	s.page.Alert(itemAddedMessage)
	s.page.Reload()

	return nil
}

// UpdateDisplay показывает сообщение о пустой корзине или список позиций
// и записывает позиции в скрытое поле формы заказа.
func (s *Cart) UpdateDisplay(items []entity.CartItem) error {
	empty := len(items) == 0
	s.page.SetVisible(view.CartEmptyMessage, empty)
	s.page.SetVisible(view.CartItems, !empty)

	if items == nil {
		items = []entity.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	s.page.SetValue(view.ItemsData, string(b))

	return nil
}
