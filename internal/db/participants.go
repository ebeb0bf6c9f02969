package db

import "context"

func (db *Postgres) AddParticipant(ctx context.Context, eventID, userID int64) error {
	query := `
		INSERT INTO participants (event, user_id)
		VALUES ($1, $2)
	`
	_, err := db.Pool.Exec(ctx, query, eventID, userID)
	return err
}

func (db *Postgres) RemoveParticipant(ctx context.Context, userID, eventID int64) error {
	query := `
		DELETE FROM participants
		WHERE user_id = $1 AND event = $2
	`
	_, err := db.Pool.Exec(ctx, query, userID, eventID)
	return err
}
