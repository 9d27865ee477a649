package entity

import "github.com/shopspring/decimal"

// Balance ответ на запрос баланса: либо сумма, либо текст ошибки.
type Balance struct {
	Amount decimal.NullDecimal `json:"balance"`
	Error  string              `json:"error"`
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CartItem struct {
	CartItemID  int    `json:"CartItemID"`
	MenuItemID  int    `json:"MenuItemID"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Price       string `json:"Price"`
	Quantity    int    `json:"Quantity"`
}

const PageRestaurants = "restaurants"

// InitialState данные страницы, передаваемые клиенту один раз при загрузке.
type InitialState struct {
	PageName      string     `json:"page_name"`
	UserID        int        `json:"user_id"`
	RestaurantID  int        `json:"restaurant_id"`
	Orders        []OrderRow `json:"orders"`
	CartItems     []CartItem `json:"cart_items"`
	FlashMessages []string   `json:"flash_messages"`
}
