package handler

import (
	"context"
	"fmt"
	"strings"
)

type StatusChangeRequest struct {
	OrderID string `validate:"required,numeric"`
	Status  string `validate:"required,order_status"`
}

type Validator interface {
	Struct(ctx context.Context, s any) error
}

func readAttr(e Event, name string) (string, error) {
	v := strings.TrimSpace(e.Target.Attr(name))
	if v == "" {
		return "", fmt.Errorf("attribute %s is missing", name)
	}

	return v, nil
}
