package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventapi/internal/domain"
)

const eventColumns = `
	e.id, e.title, e.description, e.organizer_id, u.username, u.email,
	e.location, e.start_time, e.end_time, e.is_public, e.created_at, e.updated_at`

var eventOrderBy = map[string]string{
	domain.OrderStartTimeAsc:  "e.start_time ASC, e.id",
	domain.OrderStartTimeDesc: "e.start_time DESC, e.id",
	domain.OrderCreatedAtAsc:  "e.created_at ASC, e.id",
	domain.OrderCreatedAtDesc: "e.created_at DESC, e.id",
}

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO events (title, description, organizer_id, location, start_time, end_time, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		e.Title, e.Description, e.OrganizerID, e.Location, e.StartTime, e.EndTime, e.IsPublic, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if err != nil {
		return err
	}
	if err := insertInvitees(ctx, tx, e.ID, e.Invited); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE e.id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadInvited(ctx, []*domain.Event{e}); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	where, args := eventWhere(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM events e WHERE ` + where
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy, ok := eventOrderBy[filter.Ordering]
	if !ok {
		orderBy = eventOrderBy[domain.OrderStartTimeAsc]
	}
	args = append(args, page.Limit(), page.Offset())
	query := fmt.Sprintf(`SELECT %s
		FROM events e
		JOIN users u ON u.id = e.organizer_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, eventColumns, where, orderBy, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := r.loadInvited(ctx, events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// eventWhere builds the visibility and filter predicate. Anonymous viewers only match public events.
func eventWhere(filter domain.EventFilter) (string, []any) {
	var clauses []string
	var args []any
	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.ViewerID == "" {
		clauses = append(clauses, "e.is_public")
	} else {
		p := bind(filter.ViewerID)
		clauses = append(clauses, fmt.Sprintf(
			"(e.is_public OR e.organizer_id = %s OR EXISTS (SELECT 1 FROM event_invitees i WHERE i.event_id = e.id AND i.user_id = %s))", p, p))
	}
	if filter.IsPublic != nil {
		clauses = append(clauses, "e.is_public = "+bind(*filter.IsPublic))
	}
	if filter.Location != "" {
		clauses = append(clauses, "e.location = "+bind(filter.Location))
	}
	if filter.OrganizerID != "" {
		clauses = append(clauses, "e.organizer_id = "+bind(filter.OrganizerID))
	}
	if filter.Search != "" {
		p := bind("%" + escapeLike(filter.Search) + "%")
		clauses = append(clauses, fmt.Sprintf("(e.title ILIKE %s OR e.description ILIKE %s OR e.location ILIKE %s)", p, p, p))
	}
	return strings.Join(clauses, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

func (r *eventRepository) Update(ctx context.Context, e *domain.Event, replaceInvited bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE events
		SET title = $1, description = $2, location = $3, start_time = $4, end_time = $5, is_public = $6, updated_at = $7
		WHERE id = $8
	`
	result, err := tx.ExecContext(ctx, query, e.Title, e.Description, e.Location, e.StartTime, e.EndTime, e.IsPublic, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	if replaceInvited {
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_invitees WHERE event_id = $1`, e.ID); err != nil {
			return err
		}
		if err := insertInvitees(ctx, tx, e.ID, e.Invited); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func insertInvitees(ctx context.Context, tx *sql.Tx, eventID string, userIDs []string) error {
	if len(userIDs) == 0 {
		return nil
	}
	query := `
		INSERT INTO event_invitees (event_id, user_id)
		SELECT $1, unnest($2::uuid[])
		ON CONFLICT DO NOTHING
	`
	_, err := tx.ExecContext(ctx, query, eventID, pq.Array(userIDs))
	return err
}

// loadInvited fills Invited on each event with one query.
func (r *eventRepository) loadInvited(ctx context.Context, events []*domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	ids := make([]string, len(events))
	byID := make(map[string]*domain.Event, len(events))
	for i, e := range events {
		e.Invited = []string{}
		ids[i] = e.ID
		byID[e.ID] = e
	}
	rows, err := r.DB.QueryContext(ctx, `SELECT event_id, user_id FROM event_invitees WHERE event_id = ANY($1::uuid[]) ORDER BY user_id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var eventID, userID string
		if err := rows.Scan(&eventID, &userID); err != nil {
			return err
		}
		if e, ok := byID[eventID]; ok {
			e.Invited = append(e.Invited, userID)
		}
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{Organizer: &domain.UserSummary{}}
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.OrganizerID, &e.Organizer.Username, &e.Organizer.Email,
		&e.Location, &e.StartTime, &e.EndTime, &e.IsPublic, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Organizer.ID = e.OrganizerID
	return e, nil
}
