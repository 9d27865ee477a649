package client

import (
	"context"
	"fmt"
	"github.com/imroc/req/v3"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
	"github.com/ivanpodgorny/lieferspatz/internal/metrics"
	"time"
)

// Lieferspatz клиент веб-приложения. Повторных запросов не выполняет: ответ
// сервера либо применяется, либо ошибка возвращается вызывающему.
type Lieferspatz struct {
	req *req.Client
}

func NewLieferspatz(addr string, timeout time.Duration, middlewares ...req.RequestMiddleware) *Lieferspatz {
	c := req.C().
		SetBaseURL(addr).
		SetTimeout(timeout)
	for _, m := range middlewares {
		c.OnBeforeRequest(m)
	}

	return &Lieferspatz{req: c}
}

// UpdateOrderStatus отправляет запрос на смену статуса заказа. Статус передается
// отображаемым названием, например "Being Prepared".
func (c *Lieferspatz) UpdateOrderStatus(ctx context.Context, orderID, label string) (resp entity.StatusChangeResponse, err error) {
	defer func(start time.Time) {
		metrics.ObserveRequest("update_order_status", start, err)
	}(time.Now())

	r, err := c.req.R().
		SetContext(ctx).
		SetBodyJsonMarshal(entity.StatusChangeRequest{Status: label}).
		SetSuccessResult(&resp).
		SetPathParam("orderID", orderID).
		Post("/update-order-status/{orderID}")
	if err != nil {
		return resp, err
	}

	if !r.IsSuccessState() {
		return resp, fmt.Errorf("%w: server responded with status code %d", inerr.ErrUnexpectedResponse, r.StatusCode)
	}

	return resp, nil
}

// GetBalance запрашивает баланс текущего пользователя. Ответ с ошибкой
// ({"error": "..."}) не считается ошибкой запроса и возвращается в Balance.Error.
func (c *Lieferspatz) GetBalance(ctx context.Context) (balance entity.Balance, err error) {
	defer func(start time.Time) {
		metrics.ObserveRequest("balance", start, err)
	}(time.Now())

	r, err := c.req.R().
		SetContext(ctx).
		SetSuccessResult(&balance).
		SetErrorResult(&balance).
		Get("/balance")
	if err != nil {
		return balance, err
	}

	if r.IsErrorState() && balance.Error == "" {
		return balance, fmt.Errorf("%w: server responded with status code %d", inerr.ErrUnexpectedResponse, r.StatusCode)
	}

	return balance, nil
}

// GetRestaurants загружает страницу со списком ресторанов и возвращает
// содержимое элемента с классом "list".
func (c *Lieferspatz) GetRestaurants(ctx context.Context) (list string, err error) {
	defer func(start time.Time) {
		metrics.ObserveRequest("restaurants", start, err)
	}(time.Now())

	r, err := c.req.R().
		SetContext(ctx).
		Get("/restaurants")
	if err != nil {
		return "", err
	}

	if r.IsErrorState() {
		return "", fmt.Errorf("%w: server responded with status code %d", inerr.ErrUnexpectedResponse, r.StatusCode)
	}

	body, err := r.ToString()
	if err != nil {
		return "", err
	}

	return ExtractList(body)
}

// AddToCart добавляет позицию меню в корзину. Содержимое ответа не важно.
func (c *Lieferspatz) AddToCart(ctx context.Context, itemID string) (err error) {
	defer func(start time.Time) {
		metrics.ObserveRequest("cart_add", start, err)
	}(time.Now())

	r, err := c.req.R().
		SetContext(ctx).
		SetPathParam("itemID", itemID).
		Get("/cart/add/{itemID}")
	if err != nil {
		return err
	}

	_, err = r.ToString()

	return err
}

// Login отправляет форму входа вместе с идентификатором вкладки.
func (c *Lieferspatz) Login(ctx context.Context, form entity.LoginForm, tabSessionID string) (result entity.LoginResult, err error) {
	defer func(start time.Time) {
		metrics.ObserveRequest("login", start, err)
	}(time.Now())

	r, err := c.req.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":          form.Email,
			"password":       form.Password,
			"tab_session_id": tabSessionID,
		}).
		EnableForceMultipart().
		SetSuccessResult(&result).
		SetErrorResult(&result).
		Post("/login")
	if err != nil {
		return result, err
	}

	if r.IsErrorState() && result.Message == "" {
		return result, fmt.Errorf("%w: server responded with status code %d", inerr.ErrUnexpectedResponse, r.StatusCode)
	}

	return result, nil
}
