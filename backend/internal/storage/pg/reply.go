package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

func (s *Storage) AddReply(ctx context.Context, reply domain.AddComment, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	id := s.id(replyPrefix)
	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comment_replies (id, comment_id, owner, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content, owner
	`, id, commentId, owner, reply.Content).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		if nf := referenceNotFound(err); nf != nil {
			return domain.AddedReply{}, nf
		}
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.NewAddedReply(added.Id, added.Content, added.Owner)
}

// GetRepliesByThread returns the replies of every comment in the thread in one query.
func (s *Storage) GetRepliesByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.comment_id, r.content, u.username, r.created_at, r.is_deleted
		FROM comment_replies r
		JOIN comments c ON c.id = r.comment_id
		JOIN users u ON u.id = r.owner
		WHERE c.thread_id = $1
		ORDER BY r.created_at ASC, r.id ASC
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.ReplyRow{}
	for rows.Next() {
		var r domain.ReplyRow
		if err := rows.Scan(&r.Id, &r.CommentId, &r.Content, &r.Username, &r.CreatedAt, &r.IsDeleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("replies iteration error: %w", err)
	}
	return replies, nil
}

// FindReplyById fails with NotFoundError unless the reply exists under commentId.
func (s *Storage) FindReplyById(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) error {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM comment_replies WHERE id = $1 AND comment_id = $2)`,
		id, commentId,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check reply: %w", err)
	}
	if !exists {
		return internal_errors.NotFound("reply not found")
	}
	return nil
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, userId domain.UserId) error {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, `SELECT owner FROM comment_replies WHERE id = $1`, id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("reply not found")
		}
		return fmt.Errorf("failed to fetch reply owner: %w", err)
	}
	if owner != userId {
		return internal_errors.Forbidden("you are not the owner of this reply")
	}
	return nil
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId, commentId domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE comment_replies SET is_deleted = TRUE, updated_at = now()
		WHERE id = $1 AND comment_id = $2
	`, id, commentId)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	return requireAffected(result, "reply not found")
}
