package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

type CustomerService struct {
	c *Client
}

// CustomerFilter maps one-to-one onto query parameters; empty fields are
// omitted.
type CustomerFilter struct {
	Search    string
	Type      string
	Category  string
	SellerID  int
	SalesLine string
}

type CustomerInput struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	Category  string `json:"category"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	SellerID  int    `json:"sellerId,omitempty"`
	SalesLine string `json:"salesLine,omitempty"`
}

func (s *CustomerService) List(ctx context.Context, filter CustomerFilter, page int) (List[model.Customer], error) {
	q := pageQuery(page)
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Type != "" {
		q.Set("type", filter.Type)
	}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.SellerID != 0 {
		q.Set("sellerId", fmt.Sprint(filter.SellerID))
	}
	if filter.SalesLine != "" {
		q.Set("salesLine", filter.SalesLine)
	}
	return listGet[model.Customer](ctx, s.c, "/customers", q)
}

func (s *CustomerService) Get(ctx context.Context, id int) (model.Customer, error) {
	var out model.Customer
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, &out, nil)
	return out, err
}

func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (model.Customer, error) {
	var out model.Customer
	err := s.c.do(ctx, http.MethodPost, "/customers", in, &out, nil)
	return out, err
}

func (s *CustomerService) Update(ctx context.Context, id int, in CustomerInput) (model.Customer, error) {
	var out model.Customer
	err := s.c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), in, &out, nil)
	return out, err
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil, nil)
}

func (s *CustomerService) SetLock(ctx context.Context, id int, locked bool) error {
	body := struct {
		Locked bool `json:"locked"`
	}{Locked: locked}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d/lock", id), body, nil, nil)
}

func (s *CustomerService) People(ctx context.Context, id int) ([]model.Person, error) {
	var out []model.Person
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d/people", id), nil, &out, nil)
	return out, err
}

func (s *CustomerService) AddPerson(ctx context.Context, id int, person model.Person) (model.Person, error) {
	var out model.Person
	err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/customers/%d/people", id), person, &out, nil)
	return out, err
}
