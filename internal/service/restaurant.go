package service

import (
	"context"
	"fmt"
	"github.com/ivanpodgorny/lieferspatz/internal/view"
)

type Restaurant struct {
	client RestaurantClient
	page   Display
}

type RestaurantClient interface {
	GetRestaurants(ctx context.Context) (string, error)
}

func NewRestaurant(c RestaurantClient, p Display) *Restaurant {
	return &Restaurant{
		client: c,
		page:   p,
	}
}

// Refresh заменяет содержимое списка ресторанов свежей версией с сервера.
// Если списка нет на странице, ничего не меняется.
func (s *Restaurant) Refresh(ctx context.Context) error {
	list, err := s.client.GetRestaurants(ctx)
	if err != nil {
		return fmt.Errorf("fetch restaurants: %w", err)
	}

	s.page.SetText(view.RestaurantList, list)

	return nil
}
