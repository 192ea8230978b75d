package forms

import (
	"context"
	"time"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/jalali"
	"github.com/omdehgostar/portal/internal/model"
)

var (
	ErrCustomerRequired  = &ValidationError{Message: "مشتری را انتخاب کنید"}
	ErrAmountNotPositive = &ValidationError{Message: "مبلغ باید بزرگ‌تر از صفر باشد"}
	ErrBadMethod         = &ValidationError{Message: "روش پرداخت معتبر نیست"}
	ErrBadDate           = &ValidationError{Message: "تاریخ را به شکل ۱۴۰۳/۰۵/۰۱ وارد کنید"}
	ErrChequeDueRequired = &ValidationError{Message: "برای پرداخت چکی تاریخ سررسید الزامی است"}
)

type PaymentCreator interface {
	Create(ctx context.Context, in api.PaymentInput) (model.Payment, error)
}

// PaymentForm collects a manual payment entry. Dates are typed in the
// Persian calendar and converted before the call goes out.
type PaymentForm struct {
	Modal
	CustomerID  int
	Amount      int64
	Method      string
	Date        string
	ChequeDue   string
	Description string
}

func (f *PaymentForm) Submit(ctx context.Context, payments PaymentCreator, onSuccess func()) error {
	var in api.PaymentInput

	validate := func() error {
		if f.CustomerID == 0 {
			return ErrCustomerRequired
		}
		if f.Amount <= 0 {
			return ErrAmountNotPositive
		}
		if !member(f.Method, model.PaymentMethods) {
			return ErrBadMethod
		}
		date, err := jalali.ParseDate(f.Date)
		if err != nil {
			return ErrBadDate
		}

		var due *time.Time
		if f.Method == model.PaymentMethodCheque {
			if f.ChequeDue == "" {
				return ErrChequeDueRequired
			}
			parsed, err := jalali.ParseDate(f.ChequeDue)
			if err != nil {
				return ErrBadDate
			}
			due = &parsed
		}

		in = api.PaymentInput{
			CustomerID:  f.CustomerID,
			Amount:      f.Amount,
			Method:      f.Method,
			Date:        date,
			ChequeDue:   due,
			Description: f.Description,
		}
		return nil
	}

	call := func(ctx context.Context) error {
		_, err := payments.Create(ctx, in)
		return err
	}

	return f.run(ctx, validate, call, onSuccess)
}
