package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

// PublicService covers the unauthenticated catalogue endpoints.
type PublicService struct {
	c *Client
}

func (s *PublicService) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := s.c.do(ctx, http.MethodGet, "/public/categories", nil, &out, nil)
	return out, err
}

func (s *PublicService) Products(ctx context.Context, categoryID, page int) (List[model.Product], error) {
	q := pageQuery(page)
	if categoryID != 0 {
		q.Set("categoryId", fmt.Sprint(categoryID))
	}
	return listGet[model.Product](ctx, s.c, "/public/products", q)
}
