package store

import (
	"context"

	"clinic-management-api/internal/model"
)

// CredentialByUsername returns pgx.ErrNoRows for unknown usernames; callers
// fold that and a failed password check into one generic rejection.
func (s *Store) CredentialByUsername(ctx context.Context, username string) (*model.Credential, error) {
	c := &model.Credential{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, role, username, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&c.ID, &c.Role, &c.Username, &c.PasswordHash)
	if err != nil {
		return nil, err
	}
	return c, nil
}
