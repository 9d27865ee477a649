package handler

import (
	"fmt"
	"strings"
)

type EventType string

const (
	EventClick  EventType = "click"
	EventSubmit EventType = "submit"
	EventChange EventType = "change"
)

// Element элемент страницы, на котором произошло событие.
type Element struct {
	ID      string
	Classes []string
	Attrs   map[string]string
	Value   string
}

func (e Element) Attr(name string) string {
	return e.Attrs[name]
}

// Event событие пользовательского интерфейса.
type Event struct {
	Type   EventType
	Target Element
}

// Selector простой селектор: "#id" или ".class".
type Selector string

func (s Selector) Match(e Element) bool {
	switch {
	case strings.HasPrefix(string(s), "#"):
		return e.ID != "" && e.ID == string(s[1:])
	case strings.HasPrefix(string(s), "."):
		for _, c := range e.Classes {
			if c == string(s[1:]) {
				return true
			}
		}
	}

	return false
}

// ParseEvent разбирает строку вида
//
//	change .order-status data-order-id=42 value=being_prepared
//
// Второе слово задает элемент: "#id" или ".class" (классы можно перечислить
// через точку). Остальные пары key=value становятся атрибутами, ключ value -
// значением элемента.
func ParseEvent(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Event{}, fmt.Errorf("malformed event %q: want <type> <selector> [key=value...]", line)
	}

	e := Event{
		Type:   EventType(fields[0]),
		Target: Element{Attrs: map[string]string{}},
	}

	switch target := fields[1]; {
	case strings.HasPrefix(target, "#"):
		e.Target.ID = target[1:]
	case strings.HasPrefix(target, "."):
		e.Target.Classes = strings.Split(target[1:], ".")
	default:
		return Event{}, fmt.Errorf("malformed selector %q", target)
	}

	for _, f := range fields[2:] {
		k, v, ok := strings.Cut(f, "=")
		if !ok {
			return Event{}, fmt.Errorf("malformed attribute %q", f)
		}

		if k == "value" {
			e.Target.Value = v

			continue
		}
		e.Target.Attrs[k] = v
	}

	return e, nil
}
