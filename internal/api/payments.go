package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/omdehgostar/portal/internal/model"
)

type PaymentService struct {
	c *Client
}

type PaymentInput struct {
	CustomerID  int        `json:"customerId"`
	Amount      int64      `json:"amount"`
	Method      string     `json:"method"`
	Date        time.Time  `json:"date"`
	ChequeDue   *time.Time `json:"chequeDue,omitempty"`
	Description string     `json:"description,omitempty"`
}

func (s *PaymentService) List(ctx context.Context, customerID, page int) (List[model.Payment], error) {
	q := pageQuery(page)
	if customerID != 0 {
		q.Set("customerId", fmt.Sprint(customerID))
	}
	return listGet[model.Payment](ctx, s.c, "/payments", q)
}

func (s *PaymentService) Create(ctx context.Context, in PaymentInput) (model.Payment, error) {
	var out model.Payment
	err := s.c.do(ctx, http.MethodPost, "/payments", in, &out, nil)
	return out, err
}

// Delete soft-deletes; the record stays visible with its deleted flag set.
func (s *PaymentService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/payments/%d", id), nil, nil, nil)
}
