// Package policy decides what a principal may do with events, RSVPs and reviews.
//
// Each action is an ordered list of rules. A rule either decides (Allow or Deny)
// or abstains; the first decision wins and an undecided list denies.
package policy

import "eventapi/internal/domain"

// Decision is the outcome of a single rule.
type Decision int

const (
	Abstain Decision = iota
	Allow
	Deny
)

// Rule inspects a principal and a subject.
type Rule[T any] func(p domain.Principal, subject T) Decision

// Evaluate applies rules in order and reports whether access is allowed.
func Evaluate[T any](p domain.Principal, subject T, rules []Rule[T]) bool {
	for _, rule := range rules {
		switch rule(p, subject) {
		case Allow:
			return true
		case Deny:
			return false
		}
	}
	return false
}

// RSVPSubject pairs an RSVP with the event it belongs to.
type RSVPSubject struct {
	RSVP  *domain.RSVP
	Event *domain.Event
}

var (
	readEventRules = []Rule[*domain.Event]{
		denyMissingEvent,
		allowPublicEvent,
		denyAnonymous[*domain.Event],
		allowOrganizer,
		allowInvited,
	}
	writeEventRules = []Rule[*domain.Event]{
		denyMissingEvent,
		denyAnonymous[*domain.Event],
		allowOrganizer,
	}
	updateRSVPRules = []Rule[RSVPSubject]{
		denyIncompleteRSVP,
		denyAnonymous[RSVPSubject],
		allowRSVPOwner,
		allowRSVPEventOrganizer,
	}
	createReviewRules = []Rule[struct{}]{
		denyAnonymous[struct{}],
		allowAuthenticated[struct{}],
	}
)

// CanReadEvent allows anyone to read public events; private events are readable by their organizer and invited users.
func CanReadEvent(p domain.Principal, e *domain.Event) bool {
	return Evaluate(p, e, readEventRules)
}

// CanWriteEvent allows only the organizer to update or delete an event.
func CanWriteEvent(p domain.Principal, e *domain.Event) bool {
	return Evaluate(p, e, writeEventRules)
}

// CanUpdateRSVP allows the RSVP owner or the event organizer to amend an RSVP.
func CanUpdateRSVP(p domain.Principal, rsvp *domain.RSVP, e *domain.Event) bool {
	return Evaluate(p, RSVPSubject{RSVP: rsvp, Event: e}, updateRSVPRules)
}

// CanCreateReview allows any authenticated principal. Uniqueness is enforced elsewhere.
func CanCreateReview(p domain.Principal) bool {
	return Evaluate(p, struct{}{}, createReviewRules)
}

func denyAnonymous[T any](p domain.Principal, _ T) Decision {
	if !p.IsAuthenticated() {
		return Deny
	}
	return Abstain
}

func allowAuthenticated[T any](p domain.Principal, _ T) Decision {
	if p.IsAuthenticated() {
		return Allow
	}
	return Abstain
}

func denyMissingEvent(_ domain.Principal, e *domain.Event) Decision {
	if e == nil {
		return Deny
	}
	return Abstain
}

func allowPublicEvent(_ domain.Principal, e *domain.Event) Decision {
	if e.IsPublic {
		return Allow
	}
	return Abstain
}

func allowOrganizer(p domain.Principal, e *domain.Event) Decision {
	if p.Is(e.OrganizerID) {
		return Allow
	}
	return Abstain
}

func allowInvited(p domain.Principal, e *domain.Event) Decision {
	if e.IsInvited(p.UserID) {
		return Allow
	}
	return Abstain
}

func denyIncompleteRSVP(_ domain.Principal, s RSVPSubject) Decision {
	if s.RSVP == nil || s.Event == nil {
		return Deny
	}
	return Abstain
}

func allowRSVPOwner(p domain.Principal, s RSVPSubject) Decision {
	if p.Is(s.RSVP.UserID) {
		return Allow
	}
	return Abstain
}

func allowRSVPEventOrganizer(p domain.Principal, s RSVPSubject) Decision {
	if p.Is(s.Event.OrganizerID) {
		return Allow
	}
	return Abstain
}
