package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

type WalletService struct {
	c *Client
}

type TopupRequest struct {
	Amount  int64  `json:"amount"`
	Gateway string `json:"gateway"`
}

// TopupResponse carries the gateway redirect URL; the browser (or the user,
// from the terminal) completes payment there and the gateway calls back.
type TopupResponse struct {
	RedirectURL string `json:"redirectUrl"`
	TrackID     string `json:"trackId"`
}

// TopupCallback mirrors the query parameters of the gateway's callback
// redirect.
type TopupCallback struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	ReferenceID string `json:"referenceId"`
	TrackID     string `json:"trackId"`
	Amount      int64  `json:"amount"`
}

type TopupResult struct {
	Finalized   bool   `json:"finalized"`
	ReferenceID string `json:"referenceId"`
	Amount      int64  `json:"amount"`
}

func (s *WalletService) Get(ctx context.Context, customerID int) (model.Wallet, error) {
	var out model.Wallet
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/wallets/%d", customerID), nil, &out, nil)
	return out, err
}

func (s *WalletService) Transactions(ctx context.Context, customerID, page int) (List[model.WalletTransaction], error) {
	return listGet[model.WalletTransaction](ctx, s.c,
		fmt.Sprintf("/wallets/%d/transactions", customerID), pageQuery(page))
}

func (s *WalletService) SetCreditCap(ctx context.Context, customerID int, cap int64) error {
	body := struct {
		CreditCap int64 `json:"creditCap"`
	}{CreditCap: cap}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/wallets/%d/credit-cap", customerID), body, nil, nil)
}

func (s *WalletService) Topup(ctx context.Context, customerID int, req TopupRequest) (TopupResponse, error) {
	var out TopupResponse
	err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/wallets/%d/topup", customerID), req, &out, nil)
	return out, err
}

func (s *WalletService) VerifyTopup(ctx context.Context, cb TopupCallback) (TopupResult, error) {
	var out TopupResult
	err := s.c.do(ctx, http.MethodPost, "/wallets/topup/verify", cb, &out, nil)
	return out, err
}
