package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum/shared/domain"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// FindCommentLikeId returns the id of userId's like on the comment, or "" if there is none.
func (s *Storage) FindCommentLikeId(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	return s.findCommentLikeId(ctx, s.db, commentId, userId)
}

func (s *Storage) findCommentLikeId(ctx context.Context, q sharedpg.Querier, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	var id domain.LikeId
	err := q.QueryRowContext(ctx,
		`SELECT id FROM comment_likes WHERE comment_id = $1 AND liker = $2`,
		commentId, userId,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find like: %w", err)
	}
	return id, nil
}

// AddCommentLike inserts a like. If a concurrent request already inserted
// the same (comment, liker) pair, the existing like id is returned.
func (s *Storage) AddCommentLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	id := s.id(likePrefix)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO comment_likes (id, comment_id, liker) VALUES ($1, $2, $3)`,
		id, commentId, userId,
	)
	if err == nil {
		return id, nil
	}
	if sharedpg.IsUniqueViolation(err) {
		existing, findErr := s.findCommentLikeId(ctx, s.db, commentId, userId)
		if findErr != nil {
			return "", findErr
		}
		if existing != "" {
			return existing, nil
		}
	}
	if nf := referenceNotFound(err); nf != nil {
		return "", nf
	}
	return "", fmt.Errorf("failed to insert like: %w", err)
}

func (s *Storage) DeleteCommentLikeById(ctx context.Context, id domain.LikeId) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM comment_likes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return requireAffected(result, "like not found")
}

// GetLikeCountsByThread counts likes per comment. Comments without likes are absent.
func (s *Storage) GetLikeCountsByThread(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT l.comment_id, COUNT(*)
		FROM comment_likes l
		JOIN comments c ON c.id = l.comment_id
		WHERE c.thread_id = $1
		GROUP BY l.comment_id
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	counts := domain.LikeCounts{}
	for rows.Next() {
		var commentId domain.CommentId
		var n int
		if err := rows.Scan(&commentId, &n); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[commentId] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("like counts iteration error: %w", err)
	}
	return counts, nil
}
