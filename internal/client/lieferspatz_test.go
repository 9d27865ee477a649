package client

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/imroc/req/v3"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	inerr "github.com/ivanpodgorny/lieferspatz/internal/errors"
	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"strings"
	"testing"
)

const addr = "https://lieferspatz.loc"

func newTestClient() *Lieferspatz {
	r := req.C().SetBaseURL(addr)
	httpmock.ActivateNonDefault(r.GetClient())

	return &Lieferspatz{req: r}
}

// sequence возвращает ответы по очереди, последний повторяется.
func sequence(responders ...httpmock.Responder) httpmock.Responder {
	i := 0

	return func(r *http.Request) (*http.Response, error) {
		responder := responders[i]
		if i < len(responders)-1 {
			i++
		}

		return responder(r)
	}
}

func TestLieferspatz_UpdateOrderStatus(t *testing.T) {
	var (
		ctx       = context.Background()
		client    = newTestClient()
		gotStatus string
	)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodPost,
		addr+"/update-order-status/42",
		func(r *http.Request) (*http.Response, error) {
			body := entity.StatusChangeRequest{}
			b, err := io.ReadAll(r.Body)
			if err != nil {
				return nil, err
			}
			if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
				return httpmock.NewStringResponse(http.StatusUnsupportedMediaType, ""), nil
			}
			if err := json.Unmarshal(b, &body); err != nil {
				return nil, err
			}
			gotStatus = body.Status

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
				"orderStatus":     "Being Prepared",
				"customerBalance": 12.5,
			})
		},
	)
	httpmock.RegisterResponder(
		http.MethodPost,
		addr+"/update-order-status/404",
		httpmock.NewStringResponder(http.StatusNotFound, `{"message": "Order not found!"}`),
	)
	httpmock.RegisterResponder(
		http.MethodPost,
		addr+"/update-order-status/500",
		httpmock.NewErrorResponder(errors.New("connection reset")),
	)

	resp, err := client.UpdateOrderStatus(ctx, "42", "Being Prepared")
	require.NoError(t, err, "успешная смена статуса")
	assert.Equal(t, "Being Prepared", gotStatus, "сервер получает отображаемое название")
	assert.Equal(t, "Being Prepared", resp.OrderStatus)
	assert.True(t, resp.CustomerBalance.Valid, "баланс покупателя передан")
	assert.True(t, decimal.RequireFromString("12.5").Equal(resp.CustomerBalance.Decimal))
	assert.False(t, resp.RestaurantBalance.Valid, "баланс ресторана не передан")

	_, err = client.UpdateOrderStatus(ctx, "404", "Completed")
	assert.ErrorIs(t, err, inerr.ErrUnexpectedResponse, "заказ не найден")

	_, err = client.UpdateOrderStatus(ctx, "500", "Completed")
	assert.Error(t, err, "сетевая ошибка")
}

func TestLieferspatz_UpdateOrderStatusMalformed(t *testing.T) {
	client := newTestClient()
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodPost,
		addr+"/update-order-status/42",
		func(r *http.Request) (*http.Response, error) {
			resp := httpmock.NewStringResponse(http.StatusOK, `{"orderStatus": `)
			resp.Header.Set("Content-Type", "application/json")

			return resp, nil
		},
	)

	_, err := client.UpdateOrderStatus(context.Background(), "42", "Completed")
	assert.Error(t, err, "некорректный JSON в ответе")
}

func TestLieferspatz_GetBalance(t *testing.T) {
	var (
		ctx    = context.Background()
		client = newTestClient()
	)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodGet,
		addr+"/balance",
		sequence(
			httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{"balance": 87.5}),
			httpmock.NewJsonResponderOrPanic(http.StatusNotFound, map[string]any{"error": "not found"}),
			httpmock.NewStringResponder(http.StatusInternalServerError, ""),
		),
	)

	balance, err := client.GetBalance(ctx)
	require.NoError(t, err, "успешное получение баланса")
	assert.Equal(t, "87.5", balance.Amount.Decimal.String())
	assert.Empty(t, balance.Error)

	balance, err = client.GetBalance(ctx)
	require.NoError(t, err, "ответ с текстом ошибки")
	assert.Equal(t, "not found", balance.Error)
	assert.False(t, balance.Amount.Valid)

	_, err = client.GetBalance(ctx)
	assert.Error(t, err, "ответ сервера с ошибкой без описания")
}

func TestLieferspatz_GetRestaurants(t *testing.T) {
	var (
		ctx    = context.Background()
		client = newTestClient()
		page   = `<html><body><div class="header">Lieferspatz</div>` +
			`<ul class="list restaurants"><li>Pizza Roma</li><li>Sushi Go</li></ul></body></html>`
	)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodGet,
		addr+"/restaurants",
		sequence(
			httpmock.NewStringResponder(http.StatusOK, page),
			httpmock.NewStringResponder(http.StatusBadGateway, ""),
		),
	)

	list, err := client.GetRestaurants(ctx)
	require.NoError(t, err, "успешное получение списка")
	assert.Equal(t, "<li>Pizza Roma</li><li>Sushi Go</li>", list)

	_, err = client.GetRestaurants(ctx)
	assert.ErrorIs(t, err, inerr.ErrUnexpectedResponse, "ответ сервера с ошибкой")
}

func TestLieferspatz_AddToCart(t *testing.T) {
	var (
		ctx    = context.Background()
		client = newTestClient()
	)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodGet,
		addr+"/cart/add/7",
		httpmock.NewStringResponder(http.StatusOK, "<html>cart</html>"),
	)
	httpmock.RegisterResponder(
		http.MethodGet,
		addr+"/cart/add/8",
		httpmock.NewErrorResponder(errors.New("connection refused")),
	)

	assert.NoError(t, client.AddToCart(ctx, "7"), "успешное добавление в корзину")
	assert.Error(t, client.AddToCart(ctx, "8"), "сетевая ошибка")
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["GET "+addr+"/cart/add/7"])
}

func TestLieferspatz_Login(t *testing.T) {
	var (
		ctx    = context.Background()
		client = newTestClient()
		tabID  = "tab-1"
		form   = entity.LoginForm{Email: "anna@example.com", Password: "secret"}
		got    = map[string]string{}
	)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(
		http.MethodPost,
		addr+"/login",
		func(r *http.Request) (*http.Response, error) {
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				return httpmock.NewStringResponse(http.StatusBadRequest, ""), nil
			}
			for _, k := range []string{"email", "password", "tab_session_id"} {
				got[k] = r.FormValue(k)
			}
			if r.FormValue("password") != form.Password {
				return httpmock.NewJsonResponse(http.StatusUnauthorized, map[string]any{
					"success": false,
					"message": "Invalid email or password.",
				})
			}

			return httpmock.NewJsonResponse(http.StatusOK, map[string]any{"success": true})
		},
	)

	result, err := client.Login(ctx, form, tabID)
	require.NoError(t, err, "успешный вход")
	assert.True(t, result.Success)
	assert.Equal(t, map[string]string{
		"email":          form.Email,
		"password":       form.Password,
		"tab_session_id": tabID,
	}, got, "поля формы")

	result, err = client.Login(ctx, entity.LoginForm{Email: form.Email, Password: "wrong"}, tabID)
	require.NoError(t, err, "неверный пароль")
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid email or password.", result.Message)
}
