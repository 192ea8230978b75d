package screens

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/omdehgostar/portal/internal/model"
)

// StatsProvider is the slice of the client the dashboard needs.
type StatsProvider interface {
	SalesSummary(ctx context.Context) (model.SalesSummary, error)
	OrdersByStep(ctx context.Context) ([]model.StepCount, error)
	PaymentsByMethod(ctx context.Context) ([]model.MethodTotal, error)
	TopCustomers(ctx context.Context) ([]model.CustomerTotal, error)
	WalletTotals(ctx context.Context) (model.WalletTotals, error)
	ChecksByStatus(ctx context.Context) ([]model.StatusCount, error)
	TicketLoad(ctx context.Context) (model.TicketLoad, error)
}

// LoadDashboard issues the seven report calls concurrently and joins them
// all-or-nothing: one failure and the caller gets an error with no partial
// dashboard to render.
func LoadDashboard(ctx context.Context, stats StatsProvider) (model.Dashboard, error) {
	var d model.Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Sales, err = stats.SalesSummary(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.OrdersByStep, err = stats.OrdersByStep(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.PaymentsByMeth, err = stats.PaymentsByMethod(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.TopCustomers, err = stats.TopCustomers(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Wallets, err = stats.WalletTotals(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.ChecksByStatus, err = stats.ChecksByStatus(ctx)
		return err
	})
	g.Go(func() (err error) {
		d.Tickets, err = stats.TicketLoad(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}
