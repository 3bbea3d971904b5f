package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.AddThread, owner domain.UserId) (domain.AddedThread, error) {
	id := s.id(threadPrefix)
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO threads (id, title, body, owner)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, owner
	`, id, thread.Title, thread.Body, owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		if nf := referenceNotFound(err); nf != nil {
			return domain.AddedThread{}, nf
		}
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.NewAddedThread(added.Id, added.Title, added.Owner)
}

func (s *Storage) FindThreadById(ctx context.Context, id domain.ThreadId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM threads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check thread: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("thread not found")
	}
	return nil
}

// GetThreadById returns the thread header with the owner's username.
func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	var row domain.ThreadRow
	err := s.db.QueryRowContext(ctx, `
		SELECT t.id, t.title, t.body, t.created_at, u.username
		FROM threads t
		JOIN users u ON u.id = t.owner
		WHERE t.id = $1
	`, id).Scan(&row.Id, &row.Title, &row.Body, &row.CreatedAt, &row.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, internal_errors.NotFound("thread not found")
		}
		return domain.ThreadRow{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	return row, nil
}
