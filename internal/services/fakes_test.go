package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"eventapi/internal/domain"
)

const testTimeout = 5 * time.Second

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	listErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

// add stores a user with a generated id and returns it.
func (f *fakeUserRepo) add(username string) *domain.User {
	u := &domain.User{ID: uuid.NewString(), Username: username, Email: username + "@example.com"}
	f.mu.Lock()
	f.byID[u.ID] = u
	f.mu.Unlock()
	return u
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Username == u.Username {
			return domain.ErrDuplicateUsername
		}
	}
	u.ID = uuid.NewString()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) ListByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.User
	for _, id := range ids {
		if u, ok := f.byID[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeEventRepo is an in-memory EventRepository for tests. It returns copies so
// callers cannot mutate stored state without going through Update.
type fakeEventRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Event
	users     *fakeUserRepo
	createErr error
	updates   int
}

func newFakeEventRepo(users *fakeUserRepo) *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), users: users}
}

func (f *fakeEventRepo) copyOf(e *domain.Event) *domain.Event {
	cp := *e
	cp.Invited = append([]string{}, e.Invited...)
	if f.users != nil {
		if u, err := f.users.GetByID(context.Background(), e.OrganizerID); err == nil {
			cp.Organizer = u.Summary()
		}
	}
	return &cp
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = uuid.NewString()
	f.byID[e.ID] = f.copyOf(e)
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[id]; ok {
		return f.copyOf(e), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []*domain.Event
	for _, e := range f.byID {
		visible := e.IsPublic || (filter.ViewerID != "" && (e.OrganizerID == filter.ViewerID || e.IsInvited(filter.ViewerID)))
		if !visible {
			continue
		}
		if filter.IsPublic != nil && e.IsPublic != *filter.IsPublic {
			continue
		}
		if filter.Location != "" && e.Location != filter.Location {
			continue
		}
		if filter.OrganizerID != "" && e.OrganizerID != filter.OrganizerID {
			continue
		}
		if q := strings.ToLower(filter.Search); q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Location), q) {
			continue
		}
		matched = append(matched, f.copyOf(e))
	}
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch filter.Ordering {
		case domain.OrderStartTimeDesc:
			return a.StartTime.After(b.StartTime)
		case domain.OrderCreatedAtAsc:
			return a.CreatedAt.Before(b.CreatedAt)
		case domain.OrderCreatedAtDesc:
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return a.StartTime.Before(b.StartTime)
		}
	})
	total := len(matched)
	start := min(page.Offset(), total)
	end := total
	if page.Limit() > 0 {
		end = min(start+page.Limit(), total)
	}
	return matched[start:end], total, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event, replaceInvited bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.byID[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	invited := stored.Invited
	if replaceInvited {
		invited = e.Invited
	}
	cp := f.copyOf(e)
	cp.Invited = append([]string{}, invited...)
	f.byID[e.ID] = cp
	f.updates++
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeRSVPRepo is an in-memory RSVPRepository keyed by (event, user).
type fakeRSVPRepo struct {
	mu        sync.Mutex
	rows      map[string]*domain.RSVP
	upsertErr error
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{rows: make(map[string]*domain.RSVP)}
}

func rsvpKey(eventID, userID string) string { return eventID + "|" + userID }

func (f *fakeRSVPRepo) Upsert(ctx context.Context, r *domain.RSVP) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	key := rsvpKey(r.EventID, r.UserID)
	if existing, ok := f.rows[key]; ok {
		r.ID = existing.ID
	} else {
		r.ID = uuid.NewString()
	}
	r.UpdatedAt = time.Now()
	cp := *r
	f.rows[key] = &cp
	return nil
}

func (f *fakeRSVPRepo) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rows[rsvpKey(eventID, userID)]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRSVPRepo) UpdateStatus(ctx context.Context, id string, status domain.RSVPStatus) (*domain.RSVP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.ID == id {
			r.Status = status
			r.UpdatedAt = time.Now()
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeReviewRepo is an in-memory ReviewRepository. skipExists makes ExistsForEventAndUser
// always report false so the insert-time uniqueness path can be exercised.
type fakeReviewRepo struct {
	mu         sync.Mutex
	reviews    []*domain.Review
	skipExists bool
	createErr  error
}

func (f *fakeReviewRepo) ExistsForEventAndUser(ctx context.Context, eventID, userID string) (bool, error) {
	if f.skipExists {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reviews {
		if r.EventID == eventID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewRepo) Create(ctx context.Context, r *domain.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.reviews {
		if existing.EventID == r.EventID && existing.UserID == r.UserID {
			return domain.ErrAlreadyReviewed
		}
	}
	r.ID = uuid.NewString()
	cp := *r
	f.reviews = append(f.reviews, &cp)
	return nil
}

func (f *fakeReviewRepo) ListByEventID(ctx context.Context, eventID string, page domain.PaginationParams) ([]*domain.Review, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Review
	for _, r := range f.reviews {
		if r.EventID == eventID {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, len(out), nil
}

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	byUser    map[string]*domain.Profile
	updateErr error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byUser: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) GetOrCreate(ctx context.Context, userID string) (*domain.Profile, error) {
	p, ok := f.byUser[userID]
	if !ok {
		p = &domain.Profile{ID: uuid.NewString(), UserID: userID}
		f.byUser[userID] = p
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byUser[p.UserID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.byUser[p.UserID] = &cp
	return nil
}

// fakeEmailService records invitations; err makes every send fail.
type fakeEmailService struct {
	sent []*domain.EventInvitationEmailData
	err  error
}

func (f *fakeEmailService) SendEventInvitation(ctx context.Context, data *domain.EventInvitationEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}

var errStore = errors.New("store unavailable")
