package validator

import (
	"context"
	v10validator "github.com/go-playground/validator/v10"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
	"reflect"
)

const OrderStatusTag = "order_status"

type Validator struct {
	engine Engine
}

type Engine interface {
	StructCtx(ctx context.Context, s any) error
	VarCtx(ctx context.Context, field any, tag string) error
}

func New(e Engine) *Validator {
	return &Validator{engine: e}
}

// NewDefault создает Validator с движком go-playground и зарегистрированными
// правилами приложения.
func NewDefault() (*Validator, error) {
	engine := v10validator.New()
	if err := engine.RegisterValidation(OrderStatusTag, OrderStatus); err != nil {
		return nil, err
	}

	return New(engine), nil
}

func (v *Validator) Struct(ctx context.Context, s any) error {
	return v.engine.StructCtx(ctx, s)
}

func (v *Validator) Var(ctx context.Context, field any, tag string) error {
	return v.engine.VarCtx(ctx, field, tag)
}

// OrderStatus проверяет, что значение является известным ключом статуса заказа.
func OrderStatus(fl v10validator.FieldLevel) bool {
	val := fl.Field()
	if val.Kind() != reflect.String {
		return false
	}

	return entity.OrderStatus(val.String()).Valid()
}
