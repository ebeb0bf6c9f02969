package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/zmtwc/planner/internal/model"
)

func (db *Postgres) CreateRequirement(ctx context.Context, name string, description *string, event, size int64) (int64, error) {
	query := `
		INSERT INTO requirements (name, description, event, size)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, name, description, event, size).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetRequirementSize returns the slot count of a requirement, or
// pgx.ErrNoRows when the requirement does not exist.
func (db *Postgres) GetRequirementSize(ctx context.Context, requirementID int64) (int64, error) {
	query := `SELECT size FROM requirements WHERE id = $1`
	var size int64
	if err := db.Pool.QueryRow(ctx, query, requirementID).Scan(&size); err != nil {
		return 0, err
	}
	return size, nil
}

// GetRequirementEventCreator resolves the creator of the event a
// requirement belongs to. pgx.ErrNoRows means the requirement (or its
// event) does not exist.
func (db *Postgres) GetRequirementEventCreator(ctx context.Context, requirementID int64) (int64, error) {
	query := `
		SELECT creator FROM events
		WHERE id = (SELECT event FROM requirements WHERE id = $1)
	`
	var creator int64
	if err := db.Pool.QueryRow(ctx, query, requirementID).Scan(&creator); err != nil {
		return 0, err
	}
	return creator, nil
}

// UpdateRequirement applies only the fields set in upd, each bound as a
// query parameter.
func (db *Postgres) UpdateRequirement(ctx context.Context, requirementID int64, upd model.UpdateRequirementRequest) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if upd.Size != nil {
		args = append(args, *upd.Size)
		sets = append(sets, fmt.Sprintf("size = $%d", len(args)))
	}

	args = append(args, requirementID)
	query := fmt.Sprintf("UPDATE requirements SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (db *Postgres) DeleteRequirement(ctx context.Context, requirementID int64) error {
	query := `DELETE FROM requirements WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, requirementID)
	return err
}
