package db

import "context"

func (db *Postgres) AddFulfillment(ctx context.Context, requirementID, userID int64) error {
	query := `
		INSERT INTO fulfillments (requirement, user_id)
		VALUES ($1, $2)
	`
	_, err := db.Pool.Exec(ctx, query, requirementID, userID)
	return err
}

func (db *Postgres) RemoveFulfillment(ctx context.Context, userID, requirementID int64) error {
	query := `
		DELETE FROM fulfillments
		WHERE user_id = $1 AND requirement = $2
	`
	_, err := db.Pool.Exec(ctx, query, userID, requirementID)
	return err
}

func (db *Postgres) CountFulfillments(ctx context.Context, requirementID int64) (int64, error) {
	query := `SELECT COUNT(1) FROM fulfillments WHERE requirement = $1`
	var count int64
	if err := db.Pool.QueryRow(ctx, query, requirementID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// TrimFulfillments drops the newest fulfillments of a requirement until
// at most keep remain. Used when a requirement is shrunk below its
// current fulfillment count.
func (db *Postgres) TrimFulfillments(ctx context.Context, requirementID, keep int64) error {
	query := `
		DELETE FROM fulfillments
		WHERE requirement = $1 AND user_id NOT IN (
			SELECT user_id FROM fulfillments
			WHERE requirement = $1
			ORDER BY created_at, user_id
			LIMIT $2
		)
	`
	_, err := db.Pool.Exec(ctx, query, requirementID, keep)
	return err
}
