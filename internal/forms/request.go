package forms

import (
	"context"

	"github.com/omdehgostar/portal/internal/model"
)

var ErrBadDecision = &ValidationError{Message: "تصمیم باید تأیید یا رد باشد"}

type RequestDecider interface {
	Decide(ctx context.Context, id int, status string) error
}

// RequestDecisionForm approves or rejects a pending customer request.
type RequestDecisionForm struct {
	Modal
	RequestID int
	Decision  string
}

func (f *RequestDecisionForm) Submit(ctx context.Context, requests RequestDecider, onSuccess func()) error {
	validate := func() error {
		if f.Decision != model.RequestStatusApproved && f.Decision != model.RequestStatusRejected {
			return ErrBadDecision
		}
		return nil
	}

	call := func(ctx context.Context) error {
		return requests.Decide(ctx, f.RequestID, f.Decision)
	}

	return f.run(ctx, validate, call, onSuccess)
}
