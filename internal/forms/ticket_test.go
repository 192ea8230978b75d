package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/model"
)

type fakeUploader struct {
	calls int
	metas []model.FileMeta
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, files []api.File) ([]model.FileMeta, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.metas != nil {
		return f.metas, nil
	}
	metas := make([]model.FileMeta, len(files))
	for i := range files {
		metas[i] = model.FileMeta{ID: files[i].Name}
	}
	return metas, nil
}

type fakeTickets struct {
	calls int
	got   api.TicketInput
}

func (f *fakeTickets) Create(_ context.Context, in api.TicketInput) (model.Ticket, error) {
	f.calls++
	f.got = in
	return model.Ticket{ID: 8, Subject: in.Subject}, nil
}

func TestTicketFormValidatesBeforeUpload(t *testing.T) {
	uploader := &fakeUploader{}
	tickets := &fakeTickets{}

	form := &TicketForm{
		Subject:     "",
		Message:     "سفارش ناقص رسیده",
		Attachments: []api.File{{Name: "photo.jpg", Content: []byte("x")}},
	}
	err := form.Submit(context.Background(), uploader, tickets, nil)
	require.ErrorIs(t, err, ErrSubjectRequired)
	require.Zero(t, uploader.calls)
	require.Zero(t, tickets.calls)

	form = &TicketForm{Subject: "مشکل سفارش", Message: "   "}
	err = form.Submit(context.Background(), uploader, tickets, nil)
	require.ErrorIs(t, err, ErrMessageRequired)
	require.Zero(t, uploader.calls)
	require.Zero(t, tickets.calls)
}

func TestTicketFormUploadsThenCreates(t *testing.T) {
	uploader := &fakeUploader{}
	tickets := &fakeTickets{}
	form := &TicketForm{
		Subject: "مشکل سفارش",
		Message: "دو قلم از سفارش نرسیده است",
		Attachments: []api.File{
			{Name: "box1.jpg", Content: []byte("a")},
			{Name: "box2.jpg", Content: []byte("b")},
		},
	}

	err := form.Submit(context.Background(), uploader, tickets, nil)
	require.NoError(t, err)
	require.Equal(t, 1, uploader.calls)
	require.Equal(t, 1, tickets.calls)
	// one attachment id per successfully uploaded file
	require.Equal(t, []string{"box1.jpg", "box2.jpg"}, tickets.got.AttachmentIDs)
	require.Equal(t, model.TicketPriorityNormal, tickets.got.Priority)
	require.Equal(t, 8, form.Created.ID)
}

func TestTicketFormUploadFailureSkipsCreate(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("upload broke")}
	tickets := &fakeTickets{}
	form := &TicketForm{
		Subject:     "مشکل سفارش",
		Message:     "پیوست دارد",
		Attachments: []api.File{{Name: "a.jpg", Content: []byte("a")}},
	}

	err := form.Submit(context.Background(), uploader, tickets, nil)
	require.Error(t, err)
	require.Zero(t, tickets.calls)
	require.Equal(t, StateIdle, form.State)
}

func TestTicketFormWithoutAttachments(t *testing.T) {
	uploader := &fakeUploader{}
	tickets := &fakeTickets{}
	form := &TicketForm{Subject: "سوال", Message: "فاکتور کجاست؟"}

	err := form.Submit(context.Background(), uploader, tickets, nil)
	require.NoError(t, err)
	require.Zero(t, uploader.calls)
	require.Empty(t, tickets.got.AttachmentIDs)
}
