package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventapi/internal/domain"
	"eventapi/internal/policy"
)

type rsvpService struct {
	rsvpRepo       domain.RSVPRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewRSVPService returns an RSVPService backed by the given repositories.
func NewRSVPService(rsvpRepo domain.RSVPRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.RSVPService {
	return &rsvpService{
		rsvpRepo:       rsvpRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// SetOwnRSVP creates or overwrites the caller's RSVP. The target event only has to exist; its visibility is not checked.
func (s *rsvpService) SetOwnRSVP(ctx context.Context, principal domain.Principal, eventID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !principal.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	rsvp := &domain.RSVP{
		EventID: eventID,
		UserID:  principal.UserID,
		Status:  status,
	}
	if err := s.rsvpRepo.Upsert(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("upsert rsvp: %w", err)
	}
	return rsvp, nil
}

func (s *rsvpService) UpdateRSVPFor(ctx context.Context, principal domain.Principal, eventID, targetUserID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	rsvp, err := s.rsvpRepo.GetByEventAndUser(ctx, eventID, targetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get rsvp: %w", err)
	}
	if !policy.CanUpdateRSVP(principal, rsvp, event) {
		return nil, domain.ErrForbidden
	}
	if err := validateStatus(status); err != nil {
		return nil, err
	}

	updated, err := s.rsvpRepo.UpdateStatus(ctx, rsvp.ID, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update rsvp: %w", err)
	}
	return updated, nil
}

func (s *rsvpService) getEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func validateStatus(status domain.RSVPStatus) error {
	if status == "" {
		return domain.NewValidationError("status", "status: This field is required.")
	}
	if !status.Valid() {
		return domain.NewValidationError("status", fmt.Sprintf("status: %q is not a valid choice.", string(status)))
	}
	return nil
}
