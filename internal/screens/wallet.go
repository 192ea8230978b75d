package screens

import (
	"context"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/model"
	"github.com/omdehgostar/portal/internal/session"
)

// WalletScreen shows balances and the transaction history. It consumes the
// one-shot refresh flag a finished gateway round-trip leaves behind, so a
// stale pre-topup view is never shown as current.
type WalletScreen struct {
	client *api.Client
	store  session.Store

	Wallet       model.Wallet
	Transactions *Pager[model.WalletTransaction]
	// AfterTopup is set when this load consumed the gateway flag.
	AfterTopup bool
}

func NewWalletScreen(client *api.Client, store session.Store) *WalletScreen {
	return &WalletScreen{client: client, store: store}
}

func (s *WalletScreen) Load(ctx context.Context, customerID int) error {
	flagged, err := s.store.TakeFlag(session.FlagWalletRefresh)
	if err != nil {
		return err
	}
	s.AfterTopup = flagged

	wallet, err := s.client.Wallets.Get(ctx, customerID)
	if err != nil {
		return err
	}
	s.Wallet = wallet

	s.Transactions = NewPager(func(ctx context.Context, page int) (api.List[model.WalletTransaction], error) {
		return s.client.Wallets.Transactions(ctx, customerID, page)
	})
	return s.Transactions.Load(ctx, 1)
}
