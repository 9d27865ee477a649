package entity

import (
	"fmt"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusCompleted     OrderStatus = "completed"
	OrderStatusCancelled     OrderStatus = "cancelled"
	OrderStatusBeingPrepared OrderStatus = "being_prepared"
)

var statusLabels = map[OrderStatus]string{
	OrderStatusProcessing:    "Processing",
	OrderStatusCompleted:     "Completed",
	OrderStatusCancelled:     "Cancelled",
	OrderStatusBeingPrepared: "Being Prepared",
}

// Label возвращает отображаемое название статуса, которое ожидает сервер.
func (s OrderStatus) Label() (string, bool) {
	l, ok := statusLabels[s]

	return l, ok
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]

	return ok
}

// StatusChangeRequest тело запроса на смену статуса заказа. Сервер принимает
// отображаемое название статуса, а не его ключ.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// StatusChangeResponse ответ сервера на смену статуса. Отсутствующий баланс
// означает, что обновлять его не нужно.
type StatusChangeResponse struct {
	OrderStatus       string              `json:"orderStatus"`
	CustomerBalance   decimal.NullDecimal `json:"customerBalance"`
	RestaurantBalance decimal.NullDecimal `json:"restaurantBalance"`
}

// OrderRow отрисованная на странице строка заказа.
type OrderRow struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	CustomerBalance   string `json:"customer_balance"`
	RestaurantBalance string `json:"restaurant_balance"`
}

func OrderStatusNode(orderID string) string {
	return fmt.Sprintf("order-status-%s", orderID)
}

func CustomerBalanceNode(orderID string) string {
	return fmt.Sprintf("customer-balance-%s", orderID)
}

func RestaurantBalanceNode(orderID string) string {
	return fmt.Sprintf("restaurant-balance-%s", orderID)
}

func CustomerBalanceText(amount decimal.Decimal) string {
	return "Customer Balance: €" + amount.String()
}

func RestaurantBalanceText(amount decimal.Decimal) string {
	return "Restaurant Balance: €" + amount.String()
}

// NewOrderEvent уведомление о новом заказе, приходящее по сокету.
type NewOrderEvent struct {
	RestaurantID int `json:"restaurant_id"`
	OrderID      int `json:"order_id"`
}
