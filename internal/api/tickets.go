package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/omdehgostar/portal/internal/model"
)

type TicketService struct {
	c *Client
}

type TicketFilter struct {
	Status   string
	Priority string
}

type TicketInput struct {
	Subject       string   `json:"subject"`
	Message       string   `json:"message"`
	Priority      string   `json:"priority"`
	AttachmentIDs []string `json:"attachmentIds,omitempty"`
}

type TicketReplyInput struct {
	Message       string   `json:"message"`
	AttachmentIDs []string `json:"attachmentIds,omitempty"`
}

func (s *TicketService) List(ctx context.Context, filter TicketFilter, page int) (List[model.Ticket], error) {
	q := pageQuery(page)
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Priority != "" {
		q.Set("priority", filter.Priority)
	}
	return listGet[model.Ticket](ctx, s.c, "/tickets", q)
}

func (s *TicketService) Get(ctx context.Context, id int) (model.Ticket, error) {
	var out model.Ticket
	err := s.c.do(ctx, http.MethodGet, fmt.Sprintf("/tickets/%d", id), nil, &out, nil)
	return out, err
}

func (s *TicketService) Create(ctx context.Context, in TicketInput) (model.Ticket, error) {
	var out model.Ticket
	err := s.c.do(ctx, http.MethodPost, "/tickets", in, &out, nil)
	return out, err
}

func (s *TicketService) Reply(ctx context.Context, id int, in TicketReplyInput) (model.TicketMessage, error) {
	var out model.TicketMessage
	err := s.c.do(ctx, http.MethodPost, fmt.Sprintf("/tickets/%d/messages", id), in, &out, nil)
	return out, err
}

func (s *TicketService) SetStatus(ctx context.Context, id int, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/tickets/%d/status", id), body, nil, nil)
}
