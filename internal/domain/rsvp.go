package domain

import (
	"context"
	"time"
)

// RSVPStatus is a user's answer to an event.
type RSVPStatus string

const (
	RSVPGoing    RSVPStatus = "Going"
	RSVPMaybe    RSVPStatus = "Maybe"
	RSVPNotGoing RSVPStatus = "Not Going"
)

// Valid reports whether s is one of the accepted statuses.
func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPGoing, RSVPMaybe, RSVPNotGoing:
		return true
	}
	return false
}

// RSVP is the single answer a user keeps for an event.
// swagger:model RSVP
type RSVP struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event"`
	UserID    string       `json:"-"`
	User      *UserSummary `json:"user"`
	Status    RSVPStatus   `json:"status"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// RSVPRepository defines storage operations for RSVPs.
type RSVPRepository interface {
	// Upsert creates the (event, user) RSVP or overwrites its status, atomically.
	Upsert(ctx context.Context, rsvp *RSVP) error
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*RSVP, error)
	UpdateStatus(ctx context.Context, id string, status RSVPStatus) (*RSVP, error)
}

// RSVPService defines RSVP operations.
type RSVPService interface {
	SetOwnRSVP(ctx context.Context, principal Principal, eventID string, status RSVPStatus) (*RSVP, error)
	UpdateRSVPFor(ctx context.Context, principal Principal, eventID, targetUserID string, status RSVPStatus) (*RSVP, error)
}
