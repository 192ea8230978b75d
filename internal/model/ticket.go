package model

import "time"

type Ticket struct {
	ID         int             `json:"id"`
	Subject    string          `json:"subject"`
	Status     string          `json:"status"`
	Priority   string          `json:"priority"`
	AssigneeID *int            `json:"assigneeId,omitempty"`
	Messages   []TicketMessage `json:"messages,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type TicketMessage struct {
	ID            int       `json:"id"`
	AuthorName    string    `json:"authorName"`
	AuthorRole    string    `json:"authorRole"`
	Body          string    `json:"body"`
	AttachmentIDs []string  `json:"attachmentIds,omitempty"`
	SentAt        time.Time `json:"sentAt"`
}

const (
	TicketStatusOpen           = "OPEN"
	TicketStatusWaitingCust    = "WAITING_CUSTOMER"
	TicketStatusWaitingSupport = "WAITING_SUPPORT"
	TicketStatusClosed         = "CLOSED"
	TicketStatusResolved       = "RESOLVED"
	TicketStatusReopened       = "REOPENED"
)

const (
	TicketPriorityLow    = "LOW"
	TicketPriorityNormal = "NORMAL"
	TicketPriorityHigh   = "HIGH"
	TicketPriorityUrgent = "URGENT"
)

var TicketPriorities = []string{
	TicketPriorityLow,
	TicketPriorityNormal,
	TicketPriorityHigh,
	TicketPriorityUrgent,
}
