package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

// CartService is the self-service ordering surface for customers.
type CartService struct {
	c *Client
}

type CartItemInput struct {
	ProductID int     `json:"productId"`
	Weight    float64 `json:"weight"`
}

func (s *CartService) Get(ctx context.Context) (model.Cart, error) {
	var out model.Cart
	err := s.c.do(ctx, http.MethodGet, "/cart", nil, &out, nil)
	return out, err
}

func (s *CartService) AddItem(ctx context.Context, in CartItemInput) (model.Cart, error) {
	var out model.Cart
	err := s.c.do(ctx, http.MethodPost, "/cart/items", in, &out, nil)
	return out, err
}

func (s *CartService) RemoveItem(ctx context.Context, productID int) (model.Cart, error) {
	var out model.Cart
	err := s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/items/%d", productID), nil, &out, nil)
	return out, err
}

// Checkout converts the cart into a customer request and returns it.
func (s *CartService) Checkout(ctx context.Context) (model.CustomerRequest, error) {
	var out model.CustomerRequest
	err := s.c.do(ctx, http.MethodPost, "/cart/checkout", nil, &out, nil)
	return out, err
}
