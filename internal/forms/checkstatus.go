package forms

import (
	"context"

	"github.com/omdehgostar/portal/internal/model"
)

var ErrBadCheckStatus = &ValidationError{Message: "وضعیت انتخاب‌شده معتبر نیست"}

type CheckStatusUpdater interface {
	SetStatus(ctx context.Context, id int, status string) error
}

// CheckStatusForm is the flat five-state select. Picking the state the
// check is already in closes the modal without a network call; transition
// legality is otherwise the server's problem.
type CheckStatusForm struct {
	Modal
	CheckID  int
	Current  string
	Selected string
}

func (f *CheckStatusForm) Submit(ctx context.Context, checks CheckStatusUpdater, onSuccess func()) error {
	validate := func() error {
		if !member(f.Selected, model.CheckStatuses) {
			return ErrBadCheckStatus
		}
		return nil
	}

	call := func(ctx context.Context) error {
		if f.Selected == f.Current {
			return nil
		}
		return checks.SetStatus(ctx, f.CheckID, f.Selected)
	}

	return f.run(ctx, validate, call, onSuccess)
}
