package forms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omdehgostar/portal/internal/model"
)

type fakeChecks struct {
	calls  int
	gotID  int
	gotSts string
}

func (f *fakeChecks) SetStatus(_ context.Context, id int, status string) error {
	f.calls++
	f.gotID = id
	f.gotSts = status
	return nil
}

func TestCheckStatusSameValueIsNoop(t *testing.T) {
	checks := &fakeChecks{}
	var closed bool
	form := &CheckStatusForm{
		CheckID:  31,
		Current:  model.CheckStatusBank,
		Selected: model.CheckStatusBank,
	}

	err := form.Submit(context.Background(), checks, func() { closed = true })
	require.NoError(t, err)
	require.Zero(t, checks.calls)
	require.True(t, closed)
	require.Equal(t, StateClosed, form.State)
}

func TestCheckStatusChangeIssuesOneCall(t *testing.T) {
	checks := &fakeChecks{}
	form := &CheckStatusForm{
		CheckID:  31,
		Current:  model.CheckStatusBank,
		Selected: model.CheckStatusCleared,
	}

	err := form.Submit(context.Background(), checks, nil)
	require.NoError(t, err)
	require.Equal(t, 1, checks.calls)
	require.Equal(t, 31, checks.gotID)
	require.Equal(t, model.CheckStatusCleared, checks.gotSts)
}

func TestCheckStatusUnknownValueRejected(t *testing.T) {
	checks := &fakeChecks{}
	form := &CheckStatusForm{CheckID: 31, Selected: "SHREDDED"}

	err := form.Submit(context.Background(), checks, nil)
	require.ErrorIs(t, err, ErrBadCheckStatus)
	require.Zero(t, checks.calls)
}
