package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Comment struct {
	threads  ThreadStorage
	comments CommentStorage
}

func NewComment(threads ThreadStorage, comments CommentStorage) CommentService {
	return &Comment{threads: threads, comments: comments}
}

func (s *Comment) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	comment, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threads.FindThreadById(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}

	added, err := s.comments.AddComment(ctx, comment, threadId, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}
	metrics.ContentCreated(metrics.KindComment)
	return added, nil
}

// Delete tombstones a comment. Its replies are left as they are.
func (s *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if err := s.threads.FindThreadById(ctx, threadId); err != nil {
		return err
	}
	if err := s.comments.FindCommentById(ctx, threadId, commentId); err != nil {
		return err
	}
	if err := requireOwner(ctx, s.comments.VerifyCommentOwner, commentId, userId); err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, commentId, threadId); err != nil {
		return err
	}
	metrics.ContentDeleted(metrics.KindComment)
	return nil
}
