package mailer

import (
	"log"
	"strings"

	"github.com/rushabh0311/LeadGenPro/store"
)

// Outcome statuses for a dispatch attempt.
const (
	StatusSent            = "sent"
	StatusNotFound        = "not_found"
	StatusMessageRequired = "message_required"
	StatusRelayError      = "relay_error"
)

// Request carries everything needed for one user-triggered send.
type Request struct {
	CompanyName   string
	SenderName    string
	SenderEmail   string
	Password      string
	Mode          string // "default" or "custom"
	CustomMessage string
}

// Outcome reports what happened to a dispatch request. Err is only set
// for StatusRelayError and carries the relay's detail.
type Outcome struct {
	Status    string
	Recipient string
	Err       error
}

// Dispatcher resolves a company against the lead store, composes the
// message, and hands it to the relay. All failures are reported in the
// Outcome; nothing here is ever fatal to the process.
type Dispatcher struct {
	store  *store.Store
	mailer Mailer
}

// NewDispatcher wires the dispatcher to the lead store and a relay.
func NewDispatcher(s *store.Store, m Mailer) *Dispatcher {
	return &Dispatcher{store: s, mailer: m}
}

// Dispatch runs the guards in order, then sends. Guard failures return
// without touching the relay:
//  1. unknown company → StatusNotFound
//  2. custom mode with an empty message → StatusMessageRequired
func (d *Dispatcher) Dispatch(req Request) Outcome {
	lead, ok := d.store.FindByCompany(req.CompanyName)
	if !ok {
		log.Printf("[email] company not found: %q", req.CompanyName)
		return Outcome{Status: StatusNotFound}
	}

	custom := req.Mode == "custom"
	if custom && strings.TrimSpace(req.CustomMessage) == "" {
		return Outcome{Status: StatusMessageRequired}
	}

	body := DefaultBody(lead, req.SenderName)
	if custom {
		body = CustomBody(lead, req.SenderName, req.CustomMessage)
	}

	msg := Message{
		From:    req.SenderEmail,
		To:      lead.Email,
		Subject: Subject(lead),
		Body:    body,
	}

	if err := d.mailer.Send(msg, req.Password); err != nil {
		log.Printf("[email] relay failure for %s: %v", lead.Email, err)
		return Outcome{Status: StatusRelayError, Err: err}
	}

	log.Printf("[email] sent to %s", lead.Email)
	return Outcome{Status: StatusSent, Recipient: lead.Email}
}
