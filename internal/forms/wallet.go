package forms

import (
	"context"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/model"
)

var (
	ErrBadGateway  = &ValidationError{Message: "درگاه پرداخت معتبر نیست"}
	ErrCapNegative = &ValidationError{Message: "سقف اعتبار نمی‌تواند منفی باشد"}
)

type WalletTopuper interface {
	Topup(ctx context.Context, customerID int, req api.TopupRequest) (api.TopupResponse, error)
}

// TopupForm starts a gateway top-up. On success Redirect holds the gateway
// URL the user must visit; the wallet only changes after the gateway calls
// back and the verify step runs.
type TopupForm struct {
	Modal
	CustomerID int
	Amount     int64
	Gateway    string

	Redirect api.TopupResponse
}

func (f *TopupForm) Submit(ctx context.Context, wallets WalletTopuper, onSuccess func()) error {
	validate := func() error {
		if f.CustomerID == 0 {
			return ErrCustomerRequired
		}
		if f.Amount <= 0 {
			return ErrAmountNotPositive
		}
		if f.Gateway != model.GatewayZarinpal && f.Gateway != model.GatewayZibal {
			return ErrBadGateway
		}
		return nil
	}

	call := func(ctx context.Context) error {
		resp, err := wallets.Topup(ctx, f.CustomerID, api.TopupRequest{
			Amount:  f.Amount,
			Gateway: f.Gateway,
		})
		if err != nil {
			return err
		}
		f.Redirect = resp
		return nil
	}

	return f.run(ctx, validate, call, onSuccess)
}

type CreditCapSetter interface {
	SetCreditCap(ctx context.Context, customerID int, cap int64) error
}

type CreditCapForm struct {
	Modal
	CustomerID int
	Cap        int64
}

func (f *CreditCapForm) Submit(ctx context.Context, wallets CreditCapSetter, onSuccess func()) error {
	validate := func() error {
		if f.CustomerID == 0 {
			return ErrCustomerRequired
		}
		if f.Cap < 0 {
			return ErrCapNegative
		}
		return nil
	}

	call := func(ctx context.Context) error {
		return wallets.SetCreditCap(ctx, f.CustomerID, f.Cap)
	}

	return f.run(ctx, validate, call, onSuccess)
}
