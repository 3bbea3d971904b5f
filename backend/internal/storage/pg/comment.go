package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.AddComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	id := s.id(commentPrefix)
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, thread_id, owner, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content, owner
	`, id, threadId, owner, comment.Content).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		if nf := referenceNotFound(err); nf != nil {
			return domain.AddedComment{}, nf
		}
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.NewAddedComment(added.Id, added.Content, added.Owner)
}

// GetCommentsByThread returns every comment of the thread, deleted ones included,
// oldest first.
func (s *Storage) GetCommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.thread_id, c.content, u.username, c.created_at, c.is_deleted
		FROM comments c
		JOIN users u ON u.id = c.owner
		WHERE c.thread_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		var c domain.CommentRow
		if err := rows.Scan(&c.Id, &c.ThreadId, &c.Content, &c.Username, &c.CreatedAt, &c.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("comments iteration error: %w", err)
	}
	return comments, nil
}

// FindCommentById fails with NotFoundError unless the comment exists under threadId.
func (s *Storage) FindCommentById(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND thread_id = $2)`,
		id, threadId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, userId domain.UserId) error {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, `SELECT owner FROM comments WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("comment not found")
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if owner != userId {
		return internal_errors.Forbidden("you are not the owner of this comment")
	}
	return nil
}

// DeleteComment tombstones the comment. The stored content is kept.
func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId, threadId domain.ThreadId) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE comments SET is_deleted = TRUE, updated_at = now()
		WHERE id = $1 AND thread_id = $2
	`, id, threadId)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return requireAffected(result, "comment not found")
}

func requireAffected(result sql.Result, notFound string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("%s", notFound)
	}
	return nil
}
