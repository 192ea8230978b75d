package api

import (
	"context"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

// StatsService groups the seven dashboard report endpoints. Each is an
// independent call; the dashboard screen joins them.
type StatsService struct {
	c *Client
}

func (s *StatsService) SalesSummary(ctx context.Context) (model.SalesSummary, error) {
	var out model.SalesSummary
	err := s.c.do(ctx, http.MethodGet, "/stats/sales-summary", nil, &out, nil)
	return out, err
}

func (s *StatsService) OrdersByStep(ctx context.Context) ([]model.StepCount, error) {
	var out []model.StepCount
	err := s.c.do(ctx, http.MethodGet, "/stats/orders-by-step", nil, &out, nil)
	return out, err
}

func (s *StatsService) PaymentsByMethod(ctx context.Context) ([]model.MethodTotal, error) {
	var out []model.MethodTotal
	err := s.c.do(ctx, http.MethodGet, "/stats/payments-by-method", nil, &out, nil)
	return out, err
}

func (s *StatsService) TopCustomers(ctx context.Context) ([]model.CustomerTotal, error) {
	var out []model.CustomerTotal
	err := s.c.do(ctx, http.MethodGet, "/stats/top-customers", nil, &out, nil)
	return out, err
}

func (s *StatsService) WalletTotals(ctx context.Context) (model.WalletTotals, error) {
	var out model.WalletTotals
	err := s.c.do(ctx, http.MethodGet, "/stats/wallet-totals", nil, &out, nil)
	return out, err
}

func (s *StatsService) ChecksByStatus(ctx context.Context) ([]model.StatusCount, error) {
	var out []model.StatusCount
	err := s.c.do(ctx, http.MethodGet, "/stats/checks-by-status", nil, &out, nil)
	return out, err
}

func (s *StatsService) TicketLoad(ctx context.Context) (model.TicketLoad, error) {
	var out model.TicketLoad
	err := s.c.do(ctx, http.MethodGet, "/stats/ticket-load", nil, &out, nil)
	return out, err
}
