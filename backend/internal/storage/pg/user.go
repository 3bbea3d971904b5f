package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// SaveUser mirrors a user from the user directory.
// An existing id keeps its row and gets the new username.
func (s *Storage) SaveUser(ctx context.Context, user domain.User) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.saveUser(ctx, tx, user); err != nil {
			return err
		}
		_, err := s.user(ctx, tx, user.Id)
		return err
	})
}

func (s *Storage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	return s.user(ctx, s.db, id)
}

func (s *Storage) saveUser(ctx context.Context, q sharedpg.Querier, user domain.User) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO users (id, username) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
	`, user.Id, user.Username)
	if err != nil {
		if sharedpg.IsUniqueViolation(err) {
			return &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("username %s is taken", user.Username), Code: http.StatusConflict}
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *Storage) user(ctx context.Context, q sharedpg.Querier, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx, `SELECT id, username FROM users WHERE id = $1`, id).Scan(&user.Id, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NotFound("user not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user, nil
}
