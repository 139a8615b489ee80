package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventapi/internal/domain"
	"eventapi/internal/policy"
)

const (
	maxTitleLen    = 255
	maxLocationLen = 255
)

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	emailService   domain.EmailService
	appBaseURL     string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService returns an EventService. emailService may be nil, in which case invitations are not sent.
func NewEventService(eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	emailService domain.EmailService,
	appBaseURL string,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		emailService:   emailService,
		appBaseURL:     strings.TrimRight(appBaseURL, "/"),
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context, principal domain.Principal, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	filter.ViewerID = principal.UserID
	filter.Search = strings.TrimSpace(filter.Search)
	switch filter.Ordering {
	case domain.OrderStartTimeAsc, domain.OrderStartTimeDesc, domain.OrderCreatedAtAsc, domain.OrderCreatedAtDesc:
	default:
		filter.Ordering = domain.OrderStartTimeAsc
	}

	events, total, err := s.eventRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

func (s *eventService) GetEvent(ctx context.Context, principal domain.Principal, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadEvent(principal, event) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

func (s *eventService) CreateEvent(ctx context.Context, principal domain.Principal, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !principal.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	event := &domain.Event{
		OrganizerID: principal.UserID,
		IsPublic:    true,
		Invited:     []string{},
	}
	if fields.StartTime == nil {
		return nil, domain.NewValidationError("start_time", "start_time: This field is required.")
	}
	if fields.EndTime == nil {
		return nil, domain.NewValidationError("end_time", "end_time: This field is required.")
	}
	if fields.Title == nil {
		return nil, domain.NewValidationError("title", "title: This field is required.")
	}
	mergeEventFields(event, fields)
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	if fields.Invited != nil {
		invited, err := s.resolveInvited(ctx, *fields.Invited)
		if err != nil {
			return nil, err
		}
		event.Invited = invited
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	created, err := s.getEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	s.notifyInvited(ctx, created, created.Invited)
	return created, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, principal domain.Principal, id string, fields domain.EventFields) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanWriteEvent(principal, event) {
		return nil, domain.ErrForbidden
	}

	previouslyInvited := event.Invited
	mergeEventFields(event, fields)
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	replaceInvited := fields.Invited != nil
	if replaceInvited {
		invited, err := s.resolveInvited(ctx, *fields.Invited)
		if err != nil {
			return nil, err
		}
		event.Invited = invited
	}

	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event, replaceInvited); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	updated, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if replaceInvited {
		s.notifyInvited(ctx, updated, newlyInvited(previouslyInvited, updated.Invited))
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, principal domain.Principal, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.getEvent(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanWriteEvent(principal, event) {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) getEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// resolveInvited deduplicates ids and checks that every one names an existing user.
func (s *eventService) resolveInvited(ctx context.Context, ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		parsed, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, domain.NewValidationError("invited", fmt.Sprintf("invited: Invalid pk %q - object does not exist.", raw))
		}
		id := parsed.String()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return out, nil
	}

	users, err := s.userRepo.ListByIDs(ctx, out)
	if err != nil {
		return nil, fmt.Errorf("resolve invited users: %w", err)
	}
	found := make(map[string]struct{}, len(users))
	for _, u := range users {
		found[u.ID] = struct{}{}
	}
	for _, id := range out {
		if _, ok := found[id]; !ok {
			return nil, domain.NewValidationError("invited", fmt.Sprintf("invited: Invalid pk %q - object does not exist.", id))
		}
	}
	return out, nil
}

// notifyInvited emails each user in userIDs about event. Failures are logged and dropped.
func (s *eventService) notifyInvited(ctx context.Context, event *domain.Event, userIDs []string) {
	if s.emailService == nil || len(userIDs) == 0 {
		return
	}
	users, err := s.userRepo.ListByIDs(ctx, userIDs)
	if err != nil {
		s.logger.WarnContext(ctx, "load invited users failed", "event_id", event.ID, "err", err)
		return
	}
	organizerName := ""
	if event.Organizer != nil {
		organizerName = event.Organizer.Username
	}
	for _, u := range users {
		if u.ID == event.OrganizerID || u.Email == "" {
			continue
		}
		data := &domain.EventInvitationEmailData{
			Email:         u.Email,
			Username:      u.Username,
			OrganizerName: organizerName,
			EventTitle:    event.Title,
			EventLocation: event.Location,
			StartTime:     event.StartTime,
			EventURL:      fmt.Sprintf("%s/events/%s/", s.appBaseURL, event.ID),
		}
		if err := s.emailService.SendEventInvitation(ctx, data); err != nil {
			s.logger.WarnContext(ctx, "send event invitation failed", "event_id", event.ID, "user_id", u.ID, "err", err)
		}
	}
}

func mergeEventFields(event *domain.Event, fields domain.EventFields) {
	if fields.Title != nil {
		event.Title = strings.TrimSpace(*fields.Title)
	}
	if fields.Description != nil {
		event.Description = *fields.Description
	}
	if fields.Location != nil {
		event.Location = strings.TrimSpace(*fields.Location)
	}
	if fields.StartTime != nil {
		event.StartTime = *fields.StartTime
	}
	if fields.EndTime != nil {
		event.EndTime = *fields.EndTime
	}
	if fields.IsPublic != nil {
		event.IsPublic = *fields.IsPublic
	}
}

func validateEvent(event *domain.Event) error {
	if event.Title == "" {
		return domain.NewValidationError("title", "title: This field may not be blank.")
	}
	if len([]rune(event.Title)) > maxTitleLen {
		return domain.NewValidationError("title", fmt.Sprintf("title: Ensure this field has no more than %d characters.", maxTitleLen))
	}
	if len([]rune(event.Location)) > maxLocationLen {
		return domain.NewValidationError("location", fmt.Sprintf("location: Ensure this field has no more than %d characters.", maxLocationLen))
	}
	if !event.StartTime.Before(event.EndTime) {
		return domain.NewValidationError("start_time", "Start time must be before end time.")
	}
	return nil
}

func newlyInvited(before, after []string) []string {
	old := make(map[string]struct{}, len(before))
	for _, id := range before {
		old[id] = struct{}{}
	}
	var added []string
	for _, id := range after {
		if _, ok := old[id]; !ok {
			added = append(added, id)
		}
	}
	return added
}
