package handler

// Handlers обработчики, из которых строится таблица маршрутов.
type Handlers struct {
	Order   *Order
	Balance *Balance
	Cart    *Cart
	Login   *Login
}

// Routes возвращает таблицу событий страницы.
func Routes(h Handlers) []Route {
	return []Route{
		{Event: EventClick, Selector: "#balance-btn", Handler: h.Balance.Show},
		{Event: EventClick, Selector: "#close-balance-modal", Handler: h.Balance.CloseModal},
		{Event: EventClick, Selector: "#balance-modal", Handler: h.Balance.CloseModal},
		{Event: EventClick, Selector: ".add-to-cart", Handler: h.Cart.Add},
		{Event: EventSubmit, Selector: "#login-form", Handler: h.Login.Submit},
		{Event: EventChange, Selector: ".order-status", Handler: h.Order.ChangeStatus},
	}
}
