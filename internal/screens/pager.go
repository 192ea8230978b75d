// Package screens composes client calls into the portal's list, detail and
// dashboard views. Screens hold the fetched state and nothing else; every
// Load hits the server because the client is cache-less by design.
package screens

import (
	"context"

	"github.com/omdehgostar/portal/internal/api"
)

// Pager drives a paginated list screen: fixed page size, server-supplied
// total, full replacement of items on every load.
type Pager[T any] struct {
	fetch func(ctx context.Context, page int) (api.List[T], error)

	Page  int
	Items []T
	Total int
}

func NewPager[T any](fetch func(ctx context.Context, page int) (api.List[T], error)) *Pager[T] {
	return &Pager[T]{fetch: fetch, Page: 1}
}

func (p *Pager[T]) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	list, err := p.fetch(ctx, page)
	if err != nil {
		return err
	}
	p.Page = page
	p.Items = list.Items
	p.Total = list.Total
	return nil
}

// Pages is the page count implied by the server total.
func (p *Pager[T]) Pages() int {
	if p.Total == 0 {
		return 1
	}
	return (p.Total + api.PageSize - 1) / api.PageSize
}
