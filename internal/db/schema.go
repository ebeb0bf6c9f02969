package db

import "context"

// EnsureSchema creates all tables if they do not exist yet. Safe to run
// on every startup.
func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			salt TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			creator BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS requirements (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			size BIGINT NOT NULL DEFAULT 1,
			event BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS participants (
			event BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (event, user_id)
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS fulfillments (
			requirement BIGINT NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (requirement, user_id)
		)
		`,
		`CREATE INDEX IF NOT EXISTS requirements_event_idx ON requirements(event)`,
		`CREATE INDEX IF NOT EXISTS events_creator_idx ON events(creator)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
