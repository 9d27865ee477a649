package view

import (
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestDocument_Load(t *testing.T) {
	var (
		doc   = NewDocument(nil)
		state = entity.InitialState{
			PageName: entity.PageRestaurants,
			Orders: []entity.OrderRow{
				{
					ID:                "42",
					Status:            "Processing",
					CustomerBalance:   "Customer Balance: €100",
					RestaurantBalance: "Restaurant Balance: €0",
				},
			},
			CartItems:     []entity.CartItem{{MenuItemID: 1, Name: "Pizza", Price: "9.50", Quantity: 1}},
			FlashMessages: []string{"Welcome Anna!"},
		}
	)

	require.NoError(t, doc.Load(state))

	text, ok := doc.Text("order-status-42")
	assert.True(t, ok, "строка заказа отрисована")
	assert.Equal(t, "Processing", text)
	text, _ = doc.Text("customer-balance-42")
	assert.Equal(t, "Customer Balance: €100", text)
	_, ok = doc.Text(RestaurantList)
	assert.True(t, ok, "список ресторанов есть на странице ресторанов")
	assert.Equal(t, []string{"Pizza"}, doc.Items(CartItems))
	assert.Equal(t, []string{"Welcome Anna!"}, doc.Flashes())
	value, _ := doc.Value(ItemsData)
	assert.JSONEq(t, `[{"CartItemID":0,"MenuItemID":1,"Name":"Pizza","Description":"","Price":"9.50","Quantity":1}]`, value)

	require.NoError(t, doc.Load(entity.InitialState{}))
	_, ok = doc.Text("order-status-42")
	assert.False(t, ok, "перерисовка удаляет строки заказов")
	_, ok = doc.Text(RestaurantList)
	assert.False(t, ok, "списка ресторанов нет на других страницах")
	value, _ = doc.Value(ItemsData)
	assert.Equal(t, "[]", value)
}

func TestDocument_SetText(t *testing.T) {
	var (
		changes []Change
		doc     = NewDocument(func(c Change) { changes = append(changes, c) })
	)
	doc.AddNode("order-status-1", "Processing")

	assert.True(t, doc.SetText("order-status-1", "Completed"))
	assert.False(t, doc.SetText("order-status-2", "Completed"), "узла нет на странице")
	text, _ := doc.Text("order-status-1")
	assert.Equal(t, "Completed", text)
	assert.Equal(t, []Change{{Kind: ChangeText, Target: "order-status-1", Value: "Completed"}}, changes)

	doc.RemoveNode("order-status-1")
	_, ok := doc.Text("order-status-1")
	assert.False(t, ok)
}

func TestDocument_Modal(t *testing.T) {
	doc := NewDocument(nil)
	require.NoError(t, doc.Load(entity.InitialState{}))

	_, shown := doc.Modal()
	assert.False(t, shown, "модальное окно скрыто после загрузки")

	doc.ShowModal("Your balance is: 87.5 €")
	text, shown := doc.Modal()
	assert.True(t, shown)
	assert.Equal(t, "Your balance is: 87.5 €", text)

	doc.HideModal()
	_, shown = doc.Modal()
	assert.False(t, shown)
}

func TestDocument_Browser(t *testing.T) {
	doc := NewDocument(nil)
	require.NoError(t, doc.Load(entity.InitialState{FlashMessages: []string{"a", "b"}}))

	doc.Alert("Item added to cart!")
	doc.Navigate("/home")
	doc.Reload()
	assert.True(t, doc.AppendItem(OrderList, "New Order ID: 5"))
	assert.False(t, doc.AppendItem("missing", "x"))

	assert.Equal(t, []string{"Item added to cart!"}, doc.Alerts())
	assert.Equal(t, "/home", doc.Location())
	assert.Equal(t, 1, doc.Reloads())
	assert.Equal(t, []string{"New Order ID: 5"}, doc.Items(OrderList))
	assert.Equal(t, 2, doc.RemoveFlashes())
	assert.Empty(t, doc.Flashes())
}

func TestDocument_Concurrent(t *testing.T) {
	var (
		doc = NewDocument(nil)
		wg  = &sync.WaitGroup{}
	)
	require.NoError(t, doc.Load(entity.InitialState{}))

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc.AppendItem(OrderList, "order")
			doc.SetVisible(CartItems, false)
		}()
	}
	wg.Wait()

	assert.Len(t, doc.Items(OrderList), 16)
}
