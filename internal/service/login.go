package service

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/entity"
)

const homePath = "/home"

type Login struct {
	client    LoginClient
	session   TabSessionProvider
	page      Navigator
	validator Validator
}

type LoginClient interface {
	Login(ctx context.Context, form entity.LoginForm, tabSessionID string) (entity.LoginResult, error)
}

type TabSessionProvider interface {
	TabSessionID() string
}

type Navigator interface {
	Navigate(path string)
	Alert(msg string)
}

type Validator interface {
	Struct(ctx context.Context, s any) error
}

func NewLogin(c LoginClient, s TabSessionProvider, p Navigator, v Validator) *Login {
	return &Login{
		client:    c,
		session:   s,
		page:      p,
		validator: v,
	}
}

// Submit отправляет форму входа в фоне. При успешном входе выполняет переход
// на домашнюю страницу, иначе показывает сообщение сервера.
func (s *Login) Submit(ctx context.Context, form entity.LoginForm) error {
	if err := s.validator.Struct(ctx, form); err != nil {
		return fmt.Errorf("invalid login form: %w", err)
	}

	result, err := s.client.Login(ctx, form, s.session.TabSessionID())
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if result.Success {
		s.page.Navigate(homePath)

		return nil
	}

	s.page.Alert(result.Message)

	return nil
}
