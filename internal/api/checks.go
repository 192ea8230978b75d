package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/omdehgostar/portal/internal/model"
)

type CheckService struct {
	c *Client
}

type CheckFilter struct {
	Status     string
	CustomerID int
}

type CheckInput struct {
	Number     string    `json:"number"`
	Amount     int64     `json:"amount"`
	IssuerBank string    `json:"issuerBank"`
	DestBank   string    `json:"destBank"`
	CustomerID *int      `json:"customerId,omitempty"`
	ImageID    *string   `json:"imageId,omitempty"`
	DueDate    time.Time `json:"dueDate"`
}

func (s *CheckService) List(ctx context.Context, filter CheckFilter, page int) (List[model.Check], error) {
	q := pageQuery(page)
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.CustomerID != 0 {
		q.Set("customerId", fmt.Sprint(filter.CustomerID))
	}
	return listGet[model.Check](ctx, s.c, "/accountants/checks", q)
}

func (s *CheckService) Get(ctx context.Context, id int) (model.Check, error) {
	var out model.Check
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/accountants/checks/%d", id), nil, &out, nil)
	return out, err
}

func (s *CheckService) Create(ctx context.Context, in CheckInput) (model.Check, error) {
	var out model.Check
	err := s.c.do(ctx, http.MethodPost, "/accountants/checks", in, &out, nil)
	return out, err
}

// SetStatus submits the new custody state as-is; transition legality is
// validated server-side.
func (s *CheckService) SetStatus(ctx context.Context, id int, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/accountants/checks/%d/status", id), body, nil, nil)
}

func (s *CheckService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/accountants/checks/%d", id), nil, nil, nil)
}
