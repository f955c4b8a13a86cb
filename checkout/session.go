// Package checkout is the four-stage ticket purchase wizard: tier and
// date selection, optional extras, per-attendee details, then a local
// payment gate. Nothing is charged and nothing outlives the process; on
// completion the order turns into one scannable pass per attendee.
package checkout

import (
	"errors"
	"strings"

	"enjoypark/models"
)

// Wizard stages, in order.
const (
	StageTickets  = "ticket-select"
	StageExtras   = "extras"
	StageHolders  = "attendee-details"
	StagePayment  = "payment"
	StageComplete = "complete"
)

var stageOrder = []string{StageTickets, StageExtras, StageHolders, StagePayment, StageComplete}

// Gate errors returned by Advance. The client surfaces these by keeping
// its continue control disabled, so the text stays short.
var (
	ErrNoVisitDate    = errors.New("visit date is required")
	ErrHolderCount    = errors.New("one holder record per attendee is required")
	ErrHolderFields   = errors.New("every holder needs first name, last name and date of birth")
	ErrPaymentFields  = errors.New("all payment fields are required")
	ErrAlreadyDone    = errors.New("order already complete")
	ErrCountsOutRange = errors.New("adults must be 1-10 and children 0-10")
)

// PaymentDetails are gate inputs only; no format or checksum validation
// beyond non-emptiness, and the card data is never sent anywhere.
type PaymentDetails struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
	NameOnCard string `json:"nameOnCard"`
}

func (p PaymentDetails) complete() bool {
	for _, f := range []string{p.Email, p.Phone, p.CardNumber, p.Expiry, p.CVC, p.NameOnCard} {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

// Session is one in-progress order.
type Session struct {
	ID         string                `json:"sessionId"`
	Stage      string                `json:"stage"`
	VisitDate  string                `json:"visitDate,omitempty"` // "2006-01-02"
	Adults     int                   `json:"adults"`
	Children   int                   `json:"children"`
	TicketType string                `json:"ticketType"`
	Extras     []string              `json:"extras"`
	Holders    []models.TicketHolder `json:"holders"`
	Payment    PaymentDetails        `json:"-"`
	Passes     []Pass                `json:"passes,omitempty"`
}

func newSession(id string) *Session {
	return &Session{
		ID:         id,
		Stage:      StageTickets,
		Adults:     1, // head counts always have defaults
		Children:   0,
		TicketType: "standard",
		Extras:     []string{},
		Holders:    []models.TicketHolder{},
	}
}

// SetCounts updates the head counts within the 1-10 / 0-10 bounds the
// quantity steppers enforce.
func (s *Session) SetCounts(adults, children int) error {
	if adults < 1 || adults > 10 || children < 0 || children > 10 {
		return ErrCountsOutRange
	}
	s.Adults = adults
	s.Children = children
	return nil
}

// ToggleExtra flips one extra in or out of the selection.
func (s *Session) ToggleExtra(extraID string) {
	for i, id := range s.Extras {
		if id == extraID {
			s.Extras = append(s.Extras[:i], s.Extras[i+1:]...)
			return
		}
	}
	s.Extras = append(s.Extras, extraID)
}

// gate returns the reason the session cannot leave its current stage,
// nil when it can.
func (s *Session) gate() error {
	switch s.Stage {
	case StageTickets:
		// tier and counts always hold defaults; only the date can block
		if s.VisitDate == "" {
			return ErrNoVisitDate
		}
	case StageExtras:
		// extras are optional
	case StageHolders:
		if len(s.Holders) != s.Adults+s.Children {
			return ErrHolderCount
		}
		for _, h := range s.Holders {
			if strings.TrimSpace(h.FirstName) == "" ||
				strings.TrimSpace(h.LastName) == "" ||
				strings.TrimSpace(h.DateOfBirth) == "" {
				return ErrHolderFields
			}
		}
	case StagePayment:
		if !s.Payment.complete() {
			return ErrPaymentFields
		}
	case StageComplete:
		return ErrAlreadyDone
	}
	return nil
}

// CanAdvance reports the current gate without moving.
func (s *Session) CanAdvance() error { return s.gate() }

// Advance moves to the next stage if the current gate passes. Completing
// the payment stage issues the passes.
func (s *Session) Advance() error {
	if err := s.gate(); err != nil {
		return err
	}
	for i, stage := range stageOrder {
		if stage == s.Stage && i < len(stageOrder)-1 {
			s.Stage = stageOrder[i+1]
			break
		}
	}
	if s.Stage == StageComplete {
		s.Passes = IssuePasses(s.Holders, s.VisitDate)
	}
	return nil
}

// Back moves one stage towards the start. Always allowed; a no-op at the
// first stage. Leaving the complete stage voids the issued passes.
func (s *Session) Back() {
	for i, stage := range stageOrder {
		if stage == s.Stage && i > 0 {
			s.Stage = stageOrder[i-1]
			break
		}
	}
	if s.Stage != StageComplete {
		s.Passes = nil
	}
}

// Totals prices the order against the current catalogs: tier price per
// adult plus the selected extras.
type Totals struct {
	TicketTotal float64 `json:"ticketTotal"`
	ExtrasTotal float64 `json:"extrasTotal"`
	Total       float64 `json:"total"`
}

func (s *Session) Totals(tiers []models.Ticket, extras []models.Extra) Totals {
	var t Totals
	for _, tier := range tiers {
		if tier.ID == s.TicketType {
			t.TicketTotal = tier.Price * float64(s.Adults)
			break
		}
	}
	for _, selected := range s.Extras {
		for _, e := range extras {
			if e.ID == selected {
				t.ExtrasTotal += e.Price
				break
			}
		}
	}
	t.Total = t.TicketTotal + t.ExtrasTotal
	return t
}
