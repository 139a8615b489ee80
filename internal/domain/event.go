package domain

import (
	"context"
	"time"
)

// Ordering values accepted by event listings.
const (
	OrderStartTimeAsc  = "start_time"
	OrderStartTimeDesc = "-start_time"
	OrderCreatedAtAsc  = "created_at"
	OrderCreatedAtDesc = "-created_at"
)

// Event represents an event organized by a user.
// swagger:model Event
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	OrganizerID string       `json:"-"`
	Organizer   *UserSummary `json:"organizer"`
	Location    string       `json:"location"`
	StartTime   time.Time    `json:"start_time"`
	EndTime     time.Time    `json:"end_time"`
	IsPublic    bool         `json:"is_public"`
	Invited     []string     `json:"invited"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsInvited reports whether userID is in the invited set.
func (e *Event) IsInvited(userID string) bool {
	for _, id := range e.Invited {
		if id == userID {
			return true
		}
	}
	return false
}

// EventFields carries caller-supplied event attributes. Nil fields are "not provided":
// on create they fall back to defaults, on update they keep the stored value.
type EventFields struct {
	Title       *string
	Description *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	IsPublic    *bool
	Invited     *[]string
}

// EventFilter narrows an event listing. ViewerID is the caller; empty means anonymous.
type EventFilter struct {
	ViewerID    string
	IsPublic    *bool
	Location    string
	OrganizerID string
	Search      string
	Ordering    string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create inserts the event and its invited set atomically.
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns one page of events visible under filter and the total match count.
	List(ctx context.Context, filter EventFilter, page PaginationParams) ([]*Event, int, error)
	// Update persists the mutable columns; when replaceInvited is true the invited set is replaced in the same transaction.
	Update(ctx context.Context, event *Event, replaceInvited bool) error
	// Delete removes the event; RSVPs, reviews and invitations cascade.
	Delete(ctx context.Context, id string) error
}

// EventService defines event business logic scoped by the calling principal.
type EventService interface {
	ListEvents(ctx context.Context, principal Principal, filter EventFilter, page PaginationParams) ([]*Event, int, error)
	GetEvent(ctx context.Context, principal Principal, id string) (*Event, error)
	CreateEvent(ctx context.Context, principal Principal, fields EventFields) (*Event, error)
	UpdateEvent(ctx context.Context, principal Principal, id string, fields EventFields) (*Event, error)
	DeleteEvent(ctx context.Context, principal Principal, id string) error
}
