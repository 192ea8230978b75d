package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

type RequestService struct {
	c *Client
}

func (s *RequestService) List(ctx context.Context, status string, page int) (List[model.CustomerRequest], error) {
	q := pageQuery(page)
	if status != "" {
		q.Set("status", status)
	}
	return listGet[model.CustomerRequest](ctx, s.c, "/requests", q)
}

func (s *RequestService) Get(ctx context.Context, id int) (model.CustomerRequest, error) {
	var out model.CustomerRequest
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/requests/%d", id), nil, &out, nil)
	return out, err
}

// Decide approves or rejects a pending request.
func (s *RequestService) Decide(ctx context.Context, id int, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/requests/%d/status", id), body, nil, nil)
}

// ConvertToOrder turns an approved request into one or more orders and
// returns their ids.
func (s *RequestService) ConvertToOrder(ctx context.Context, id int) ([]int, error) {
	var out struct {
		OrderIDs []int `json:"orderIds"`
	}
	err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/requests/%d/convert", id), nil, &out, nil)
	return out.OrderIDs, err
}
