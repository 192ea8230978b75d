package screens

import (
	"context"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/model"
)

// CustomerScreen is the admin customer-detail view: the record itself, its
// wallet and the recent payments, fetched sequentially on load.
type CustomerScreen struct {
	client *api.Client

	Customer model.Customer
	Wallet   model.Wallet
	Payments *Pager[model.Payment]
}

func NewCustomerScreen(client *api.Client) *CustomerScreen {
	return &CustomerScreen{client: client}
}

func (s *CustomerScreen) Load(ctx context.Context, customerID int) error {
	customer, err := s.client.Customers.Get(ctx, customerID)
	if err != nil {
		return err
	}
	wallet, err := s.client.Wallets.Get(ctx, customerID)
	if err != nil {
		return err
	}

	s.Customer = customer
	s.Wallet = wallet
	s.Payments = NewPager(func(ctx context.Context, page int) (api.List[model.Payment], error) {
		return s.client.Payments.List(ctx, customerID, page)
	})
	return s.Payments.Load(ctx, 1)
}
