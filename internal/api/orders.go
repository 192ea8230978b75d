package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

type OrderService struct {
	c *Client
}

type OrderFilter struct {
	CustomerID    int
	Step          string
	PaymentStatus string
}

func (s *OrderService) List(ctx context.Context, filter OrderFilter, page int) (List[model.Order], error) {
	q := pageQuery(page)
	if filter.CustomerID != 0 {
		q.Set("customerId", fmt.Sprint(filter.CustomerID))
	}
	if filter.Step != "" {
		q.Set("step", filter.Step)
	}
	if filter.PaymentStatus != "" {
		q.Set("paymentStatus", filter.PaymentStatus)
	}
	return listGet[model.Order](ctx, s.c, "/orders", q)
}

func (s *OrderService) Get(ctx context.Context, id int) (model.Order, error) {
	var out model.Order
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &out, nil)
	return out, err
}

// SetStep moves the order along the pipeline. Step legality is the server's
// call.
func (s *OrderService) SetStep(ctx context.Context, id int, step string) error {
	body := struct {
		Step string `json:"step"`
	}{Step: step}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/step", id), body, nil, nil)
}

func (s *OrderService) Cargoes(ctx context.Context, id int) ([]model.Cargo, error) {
	var out []model.Cargo
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/cargoes", id), nil, &out, nil)
	return out, err
}
