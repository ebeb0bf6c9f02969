package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/zmtwc/planner/internal/model"
)

func (db *Postgres) CreateEvent(ctx context.Context, name string, description *string, creator int64) (int64, error) {
	query := `
		INSERT INTO events (name, description, creator)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, name, description, creator).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) GetEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	query := `
		SELECT events.id, events.name, events.description, users.id, users.username
		FROM events
		JOIN users ON events.creator = users.id
		WHERE events.id = $1
	`
	var ev model.Event
	err := db.Pool.QueryRow(ctx, query, eventID).Scan(
		&ev.ID,
		&ev.Name,
		&ev.Description,
		&ev.Creator.ID,
		&ev.Creator.Username,
	)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (db *Postgres) ListEvents(ctx context.Context) ([]model.Event, error) {
	query := `
		SELECT events.id, events.name, events.description, users.id, users.username
		FROM events
		JOIN users ON events.creator = users.id
		ORDER BY events.id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Event
	for rows.Next() {
		var ev model.Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.Description, &ev.Creator.ID, &ev.Creator.Username); err != nil {
			return nil, err
		}
		list = append(list, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Event{}
	}
	return list, nil
}

// GetEventCreator returns the owning user id of an event, or
// pgx.ErrNoRows when the event does not exist.
func (db *Postgres) GetEventCreator(ctx context.Context, eventID int64) (int64, error) {
	query := `SELECT creator FROM events WHERE id = $1`
	var creator int64
	if err := db.Pool.QueryRow(ctx, query, eventID).Scan(&creator); err != nil {
		return 0, err
	}
	return creator, nil
}

// UpdateEvent applies only the fields set in upd, each bound as a query
// parameter. Callers must ensure at least one field is present.
func (db *Postgres) UpdateEvent(ctx context.Context, eventID int64, upd model.UpdateEventRequest) error {
	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}

	args = append(args, eventID)
	query := fmt.Sprintf("UPDATE events SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) DeleteEvent(ctx context.Context, eventID int64) error {
	query := `DELETE FROM events WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, eventID)
	return err
}

func (db *Postgres) ListEventParticipants(ctx context.Context, eventID int64) ([]model.User, error) {
	query := `
		SELECT users.id, users.username
		FROM users
		JOIN participants ON participants.user_id = users.id
		WHERE participants.event = $1
		ORDER BY users.id
	`
	rows, err := db.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.User{}
	}
	return list, nil
}

func (db *Postgres) ListEventRequirements(ctx context.Context, eventID int64) ([]model.Requirement, error) {
	query := `
		SELECT id, name, description, size
		FROM requirements
		WHERE event = $1
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Requirement
	for rows.Next() {
		var r model.Requirement
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &r.Size); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Requirement{}
	}
	return list, nil
}

func (db *Postgres) ListEventFulfillments(ctx context.Context, eventID int64) ([]model.EventFulfiller, error) {
	query := `
		SELECT users.id, users.username, fulfillments.requirement
		FROM fulfillments
		JOIN users ON fulfillments.user_id = users.id
		WHERE fulfillments.requirement IN (
			SELECT id FROM requirements WHERE event = $1
		)
		ORDER BY fulfillments.requirement, users.id
	`
	rows, err := db.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.EventFulfiller
	for rows.Next() {
		var f model.EventFulfiller
		if err := rows.Scan(&f.User.ID, &f.User.Username, &f.Requirement); err != nil {
			return nil, err
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.EventFulfiller{}
	}
	return list, nil
}
