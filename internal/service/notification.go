package service

import (
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	"github.com/ivanpodgorny/lieferspatz/internal/view"
)

const (
	EventJoinRestaurant = "join_restaurant"
	EventJoinUser       = "join_user"
	EventNewOrder       = "new_order"
)

type Notification struct {
	session Session
	page    NotificationPage
}

type Session interface {
	TabSessionProvider
	UserID() int
	RestaurantID() int
}

type Emitter interface {
	Emit(event string, payload any) error
}

type NotificationPage interface {
	AppendItem(id, text string) bool
	Alert(msg string)
}

func NewNotification(s Session, p NotificationPage) *Notification {
	return &Notification{
		session: s,
		page:    p,
	}
}

// Join подписывает сокет на комнаты ресторана и пользователя. Вызывается
// после каждого подключения.
func (s *Notification) Join(e Emitter) error {
	if id := s.session.RestaurantID(); id != 0 {
		if err := e.Emit(EventJoinRestaurant, map[string]any{"restaurant_id": id}); err != nil {
			return err
		}
	}

	return e.Emit(EventJoinUser, map[string]any{
		"user_id":        s.session.UserID(),
		"tab_session_id": s.session.TabSessionID(),
	})
}

// NewOrder добавляет новый заказ в список на странице ресторана и уведомляет
// пользователя. Заказы других ресторанов игнорируются.
func (s *Notification) NewOrder(e entity.NewOrderEvent) bool {
	if e.RestaurantID != s.session.RestaurantID() {
		return false
	}

	s.page.AppendItem(view.OrderList, fmt.Sprintf("New Order ID: %d", e.OrderID))
	s.page.Alert(fmt.Sprintf("New order received! Order ID: %d", e.OrderID))

	return true
}
