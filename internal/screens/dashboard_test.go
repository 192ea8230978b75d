package screens

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omdehgostar/portal/internal/model"
)

type fakeStats struct {
	calls  atomic.Int32
	failOn string
}

func (f *fakeStats) maybeFail(name string) error {
	f.calls.Add(1)
	if f.failOn == name {
		return errors.New(name + " report failed")
	}
	return nil
}

func (f *fakeStats) SalesSummary(context.Context) (model.SalesSummary, error) {
	return model.SalesSummary{TotalAmount: 9_000_000, OrderCount: 45}, f.maybeFail("sales")
}

func (f *fakeStats) OrdersByStep(context.Context) ([]model.StepCount, error) {
	return []model.StepCount{{Step: model.OrderStepInventory, Count: 3}}, f.maybeFail("steps")
}

func (f *fakeStats) PaymentsByMethod(context.Context) ([]model.MethodTotal, error) {
	return []model.MethodTotal{{Method: model.PaymentMethodCash, Amount: 100}}, f.maybeFail("methods")
}

func (f *fakeStats) TopCustomers(context.Context) ([]model.CustomerTotal, error) {
	return []model.CustomerTotal{{CustomerID: 1, Amount: 70}}, f.maybeFail("top")
}

func (f *fakeStats) WalletTotals(context.Context) (model.WalletTotals, error) {
	return model.WalletTotals{BalanceSum: 55}, f.maybeFail("wallets")
}

func (f *fakeStats) ChecksByStatus(context.Context) ([]model.StatusCount, error) {
	return []model.StatusCount{{Status: model.CheckStatusCleared, Count: 2}}, f.maybeFail("checks")
}

func (f *fakeStats) TicketLoad(context.Context) (model.TicketLoad, error) {
	return model.TicketLoad{Open: 4}, f.maybeFail("tickets")
}

func TestDashboardLoadsAllSevenReports(t *testing.T) {
	stats := &fakeStats{}

	d, err := LoadDashboard(context.Background(), stats)
	require.NoError(t, err)
	require.Equal(t, int32(7), stats.calls.Load())
	require.Equal(t, int64(9_000_000), d.Sales.TotalAmount)
	require.Len(t, d.OrdersByStep, 1)
	require.Len(t, d.PaymentsByMeth, 1)
	require.Len(t, d.TopCustomers, 1)
	require.Equal(t, int64(55), d.Wallets.BalanceSum)
	require.Len(t, d.ChecksByStatus, 1)
	require.Equal(t, 4, d.Tickets.Open)
}

func TestDashboardIsAllOrNothing(t *testing.T) {
	for _, failOn := range []string{"sales", "steps", "methods", "top", "wallets", "checks", "tickets"} {
		stats := &fakeStats{failOn: failOn}

		d, err := LoadDashboard(context.Background(), stats)
		require.Error(t, err, "expected failure when %s report fails", failOn)
		// no partial dashboard escapes
		require.Equal(t, model.Dashboard{}, d)
	}
}
