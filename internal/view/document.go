package view

import (
	"encoding/json"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	"sync"
)

const (
	BalanceModal     = "balance-modal"
	BalanceText      = "balance-text"
	OrderList        = "order-list"
	RestaurantList   = "list"
	CartItems        = "cart-items"
	CartEmptyMessage = "cart-empty-message"
	ItemsData        = "items-data"
)

type ChangeKind string

const (
	ChangeText     ChangeKind = "text"
	ChangeValue    ChangeKind = "value"
	ChangeVisible  ChangeKind = "visible"
	ChangeAppend   ChangeKind = "append"
	ChangeRemove   ChangeKind = "remove"
	ChangeAlert    ChangeKind = "alert"
	ChangeNavigate ChangeKind = "navigate"
	ChangeReload   ChangeKind = "reload"
)

// Change описывает одно изменение документа. Передается слушателю документа.
type Change struct {
	Kind   ChangeKind
	Target string
	Value  string
}

type Listener func(Change)

type node struct {
	text    string
	value   string
	visible bool
	items   []string
}

// Document модель отрисованной страницы. Узлы адресуются идентификаторами,
// как элементы DOM. Все методы безопасны для конкурентного использования.
type Document struct {
	nodes    map[string]*node
	flashes  []string
	alerts   []string
	location string
	reloads  int
	listener Listener
	mu       sync.Mutex
}

func NewDocument(l Listener) *Document {
	return &Document{
		nodes:    map[string]*node{},
		listener: l,
	}
}

// Load отрисовывает страницу по начальному состоянию.
func (d *Document) Load(state entity.InitialState) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nodes = map[string]*node{}
	d.flashes = append([]string(nil), state.FlashMessages...)

	for _, o := range state.Orders {
		d.nodes[entity.OrderStatusNode(o.ID)] = &node{text: o.Status, visible: true}
		d.nodes[entity.CustomerBalanceNode(o.ID)] = &node{text: o.CustomerBalance, visible: true}
		d.nodes[entity.RestaurantBalanceNode(o.ID)] = &node{text: o.RestaurantBalance, visible: true}
	}

	d.nodes[BalanceModal] = &node{}
	d.nodes[BalanceText] = &node{visible: true}
	d.nodes[OrderList] = &node{visible: true}
	d.nodes[CartItems] = &node{visible: true, items: cartItemNames(state.CartItems)}
	d.nodes[CartEmptyMessage] = &node{text: "Your cart is empty"}
	if state.PageName == entity.PageRestaurants {
		d.nodes[RestaurantList] = &node{visible: true}
	}

	items := state.CartItems
	if items == nil {
		items = []entity.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	d.nodes[ItemsData] = &node{value: string(b)}

	return nil
}

func cartItemNames(items []entity.CartItem) []string {
	names := make([]string, 0, len(items))
	for _, i := range items {
		names = append(names, i.Name)
	}

	return names
}

// AddNode добавляет узел с текстом, заменяя существующий.
func (d *Document) AddNode(id, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nodes[id] = &node{text: text, visible: true}
}

func (d *Document) RemoveNode(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.nodes, id)
}

func (d *Document) Text(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]
	if !ok {
		return "", false
	}

	return n.text, true
}

// SetText заменяет текст узла. Возвращает false, если узла нет на странице.
func (d *Document) SetText(id, text string) bool {
	d.mu.Lock()
	n, ok := d.nodes[id]
	if ok {
		n.text = text
	}
	d.mu.Unlock()

	if ok {
		d.notify(Change{Kind: ChangeText, Target: id, Value: text})
	}

	return ok
}

func (d *Document) Value(id string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]
	if !ok {
		return "", false
	}

	return n.value, true
}

func (d *Document) SetValue(id, value string) bool {
	d.mu.Lock()
	n, ok := d.nodes[id]
	if ok {
		n.value = value
	}
	d.mu.Unlock()

	if ok {
		d.notify(Change{Kind: ChangeValue, Target: id, Value: value})
	}

	return ok
}

func (d *Document) Visible(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]

	return ok && n.visible
}

func (d *Document) SetVisible(id string, visible bool) bool {
	d.mu.Lock()
	n, ok := d.nodes[id]
	if ok {
		n.visible = visible
	}
	d.mu.Unlock()

	if ok {
		v := "hidden"
		if visible {
			v = "shown"
		}
		d.notify(Change{Kind: ChangeVisible, Target: id, Value: v})
	}

	return ok
}

// Items возвращает дочерние элементы списка.
func (d *Document) Items(id string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	n, ok := d.nodes[id]
	if !ok {
		return nil
	}

	return append([]string(nil), n.items...)
}

func (d *Document) AppendItem(id, text string) bool {
	d.mu.Lock()
	n, ok := d.nodes[id]
	if ok {
		n.items = append(n.items, text)
	}
	d.mu.Unlock()

	if ok {
		d.notify(Change{Kind: ChangeAppend, Target: id, Value: text})
	}

	return ok
}

// ShowModal выводит модальное окно баланса с заданным текстом.
func (d *Document) ShowModal(text string) {
	d.SetText(BalanceText, text)
	d.SetVisible(BalanceModal, true)
}

func (d *Document) HideModal() {
	d.SetVisible(BalanceModal, false)
}

// Modal возвращает текст модального окна и признак того, что оно открыто.
func (d *Document) Modal() (string, bool) {
	text, _ := d.Text(BalanceText)

	return text, d.Visible(BalanceModal)
}

func (d *Document) Flashes() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.flashes...)
}

// RemoveFlashes убирает все флеш-сообщения и возвращает их количество.
func (d *Document) RemoveFlashes() int {
	d.mu.Lock()
	removed := d.flashes
	d.flashes = nil
	d.mu.Unlock()

	for _, f := range removed {
		d.notify(Change{Kind: ChangeRemove, Target: "flash", Value: f})
	}

	return len(removed)
}

func (d *Document) Alert(msg string) {
	d.mu.Lock()
	d.alerts = append(d.alerts, msg)
	d.mu.Unlock()

	d.notify(Change{Kind: ChangeAlert, Value: msg})
}

func (d *Document) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.alerts...)
}

func (d *Document) Navigate(path string) {
	d.mu.Lock()
	d.location = path
	d.mu.Unlock()

	d.notify(Change{Kind: ChangeNavigate, Value: path})
}

func (d *Document) Location() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.location
}

// Reload отмечает полную перезагрузку страницы. Состояние узлов сохраняется
// до тех пор, пока новое состояние не будет загружено через Load.
func (d *Document) Reload() {
	d.mu.Lock()
	d.reloads++
	d.mu.Unlock()

	d.notify(Change{Kind: ChangeReload})
}

func (d *Document) Reloads() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.reloads
}

func (d *Document) notify(c Change) {
	if d.listener != nil {
		d.listener(c)
	}
}
