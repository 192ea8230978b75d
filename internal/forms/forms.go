// Package forms holds the modal contracts: each form validates its fields,
// performs exactly one mutation (plus attachment uploads where declared),
// and reports success or a localized failure message. Business validation
// stays server-side; forms only check the trivial preconditions.
package forms

import (
	"context"
	"errors"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/labels"
)

// State is the modal lifecycle: IDLE → SUBMITTING → (closed | IDLE with a
// message shown).
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateClosed
)

// ValidationError carries a user-facing localized message and is raised
// before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Modal is embedded by every form.
type Modal struct {
	State   State
	Message string
}

// run drives one submit cycle. validate runs first and short-circuits the
// call entirely; on success the modal closes and onSuccess (typically
// "close and refetch") fires.
func (m *Modal) run(ctx context.Context, validate func() error, call func(context.Context) error, onSuccess func()) error {
	m.Message = ""
	m.State = StateSubmitting

	if err := validate(); err != nil {
		m.fail(err)
		return err
	}
	if err := call(ctx); err != nil {
		m.fail(err)
		return err
	}

	m.State = StateClosed
	if onSuccess != nil {
		onSuccess()
	}
	return nil
}

func (m *Modal) fail(err error) {
	m.State = StateIdle
	m.Message = Localize(err)
}

// Localize picks the message a user sees: validation text as-is, the
// server's own message verbatim when it sent one, otherwise a generic
// fallback.
func Localize(err error) string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}
	if errors.Is(err, api.ErrSessionExpired) {
		return labels.MsgSessionExpired
	}
	if api.IsPermissionDenied(err) {
		return labels.MsgPermissionDenied
	}
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	return labels.MsgGenericError
}

func member(value string, values []string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
