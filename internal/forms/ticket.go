package forms

import (
	"context"
	"strings"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/model"
)

var (
	ErrSubjectRequired = &ValidationError{Message: "موضوع تیکت را وارد کنید"}
	ErrMessageRequired = &ValidationError{Message: "متن پیام را وارد کنید"}
	ErrBadPriority     = &ValidationError{Message: "اولویت انتخاب‌شده معتبر نیست"}
)

type TicketCreator interface {
	Create(ctx context.Context, in api.TicketInput) (model.Ticket, error)
}

type FileUploader interface {
	Upload(ctx context.Context, files []api.File) ([]model.FileMeta, error)
}

// TicketForm creates a support ticket. Field validation runs before any
// upload; attachments go up first and the create payload references exactly
// the uploaded ids.
type TicketForm struct {
	Modal
	Subject     string
	Message     string
	Priority    string
	Attachments []api.File

	Created model.Ticket
}

func (f *TicketForm) Submit(ctx context.Context, files FileUploader, tickets TicketCreator, onSuccess func()) error {
	validate := func() error {
		if strings.TrimSpace(f.Subject) == "" {
			return ErrSubjectRequired
		}
		if strings.TrimSpace(f.Message) == "" {
			return ErrMessageRequired
		}
		if f.Priority == "" {
			f.Priority = model.TicketPriorityNormal
		}
		if !member(f.Priority, model.TicketPriorities) {
			return ErrBadPriority
		}
		return nil
	}

	call := func(ctx context.Context) error {
		var attachmentIDs []string
		if len(f.Attachments) > 0 {
			metas, err := files.Upload(ctx, f.Attachments)
			if err != nil {
				return err
			}
			attachmentIDs = make([]string, 0, len(metas))
			for _, meta := range metas {
				attachmentIDs = append(attachmentIDs, meta.ID)
			}
		}

		created, err := tickets.Create(ctx, api.TicketInput{
			Subject:       strings.TrimSpace(f.Subject),
			Message:       strings.TrimSpace(f.Message),
			Priority:      f.Priority,
			AttachmentIDs: attachmentIDs,
		})
		if err != nil {
			return err
		}
		f.Created = created
		return nil
	}

	return f.run(ctx, validate, call, onSuccess)
}
