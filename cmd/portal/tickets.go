package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/omdehgostar/portal/internal/api"
	"github.com/omdehgostar/portal/internal/forms"
	"github.com/omdehgostar/portal/internal/jalali"
	"github.com/omdehgostar/portal/internal/labels"
	"github.com/omdehgostar/portal/internal/model"
	"github.com/omdehgostar/portal/internal/screens"
)

func (a *app) cmdTickets(args []string) error {
	fs := flag.NewFlagSet("tickets", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	status := fs.String("status", "", "status filter")
	priority := fs.String("priority", "", "priority filter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := api.TicketFilter{Status: *status, Priority: *priority}
	pager := screens.NewPager(func(ctx context.Context, page int) (api.List[model.Ticket], error) {
		return a.client.Tickets.List(ctx, filter, page)
	})
	if err := pager.Load(a.ctx(), *page); err != nil {
		return err
	}

	rows := make([][]string, 0, len(pager.Items))
	for _, t := range pager.Items {
		rows = append(rows, []string{
			strconv.Itoa(t.ID), t.Subject,
			labels.TicketStatus(t.Status), labels.TicketPriority(t.Priority),
			jalali.Format(t.CreatedAt),
		})
	}
	table([]string{"ID", "موضوع", "وضعیت", "اولویت", "تاریخ"}, rows)
	pageLine(pager.Page, pager.Pages(), pager.Total)
	return nil
}

func (a *app) cmdTicket(args []string) error {
	fs := flag.NewFlagSet("ticket", flag.ContinueOnError)
	id := fs.Int("id", 0, "ticket id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ticket, err := a.client.Tickets.Get(a.ctx(), *id)
	if err != nil {
		return err
	}

	kv(
		[2]string{"موضوع", ticket.Subject},
		[2]string{"وضعیت", labels.TicketStatus(ticket.Status)},
		[2]string{"اولویت", labels.TicketPriority(ticket.Priority)},
	)
	for _, msg := range ticket.Messages {
		fmt.Printf("\n[%s] %s (%s):\n%s\n", jalali.FormatTime(msg.SentAt), msg.AuthorName, msg.AuthorRole, msg.Body)
		for _, attachmentID := range msg.AttachmentIDs {
			fmt.Println("  پیوست:", a.client.Files.URL(attachmentID))
		}
	}
	return nil
}

func (a *app) cmdTicketNew(args []string) error {
	fs := flag.NewFlagSet("ticket-new", flag.ContinueOnError)
	subject := fs.String("subject", "", "ticket subject")
	message := fs.String("message", "", "first message")
	priority := fs.String("priority", "", "LOW, NORMAL, HIGH or URGENT")
	attach := fs.String("attach", "", "comma-separated file paths")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var attachments []api.File
	if *attach != "" {
		for _, path := range strings.Split(*attach, ",") {
			path = strings.TrimSpace(path)
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			file, err := api.ReadFile(filepath.Base(path), f)
			f.Close()
			if err != nil {
				return err
			}
			attachments = append(attachments, file)
		}
	}

	form := &forms.TicketForm{
		Subject:     *subject,
		Message:     *message,
		Priority:    *priority,
		Attachments: attachments,
	}
	if err := form.Submit(a.ctx(), a.client.Files, a.client.Tickets, nil); err != nil {
		return err
	}
	fmt.Printf("تیکت %d ثبت شد\n", form.Created.ID)
	return nil
}

func (a *app) cmdTicketReply(args []string) error {
	fs := flag.NewFlagSet("ticket-reply", flag.ContinueOnError)
	id := fs.Int("id", 0, "ticket id")
	message := fs.String("message", "", "reply body")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*message) == "" {
		return forms.ErrMessageRequired
	}
	_, err := a.client.Tickets.Reply(a.ctx(), *id, api.TicketReplyInput{Message: *message})
	if err != nil {
		return err
	}
	fmt.Println("پاسخ ثبت شد")
	return nil
}
