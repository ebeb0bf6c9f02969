package db

import (
	"context"

	"github.com/zmtwc/planner/internal/model"
)

func (db *Postgres) CreateCredential(ctx context.Context, username, passwordHash, salt string) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash, salt)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := db.Pool.QueryRow(ctx, query, username, passwordHash, salt).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (db *Postgres) GetCredentialByUsername(ctx context.Context, username string) (*model.Credential, error) {
	query := `
		SELECT id, username, password_hash, salt
		FROM users
		WHERE username = $1
	`
	var cred model.Credential
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&cred.ID,
		&cred.Username,
		&cred.PasswordHash,
		&cred.Salt,
	)
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (db *Postgres) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	query := `
		SELECT id, username
		FROM users
		WHERE id = $1
	`
	var user model.User
	if err := db.Pool.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) UpdateUsername(ctx context.Context, userID int64, username string) error {
	query := `
		UPDATE users
		SET username = $1
		WHERE id = $2
	`
	_, err := db.Pool.Exec(ctx, query, username, userID)
	return err
}

func (db *Postgres) DeleteUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := db.Pool.Exec(ctx, query, userID)
	return err
}

// ListUsedRequirements reports how often each requirement name appears
// across the events the given user created, most used first.
func (db *Postgres) ListUsedRequirements(ctx context.Context, creatorID int64) ([]model.UsedRequirement, error) {
	query := `
		SELECT COUNT(requirements.name) AS score, requirements.name
		FROM requirements
		JOIN events ON requirements.event = events.id
		WHERE events.creator = $1
		GROUP BY requirements.name
		ORDER BY score DESC, requirements.name
		LIMIT 10
	`
	rows, err := db.Pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.UsedRequirement
	for rows.Next() {
		var r model.UsedRequirement
		if err := rows.Scan(&r.Score, &r.Name); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.UsedRequirement{}
	}
	return list, nil
}
