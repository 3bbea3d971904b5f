package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

type LikeService interface {
	// Toggle likes the comment, or unlikes it if the user already did.
	// It reports whether the comment ends up liked.
	Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error)
}

type Like struct {
	threads  ThreadStorage
	comments CommentStorage
	likes    LikeStorage
}

func NewLike(threads ThreadStorage, comments CommentStorage, likes LikeStorage) LikeService {
	return &Like{threads: threads, comments: comments, likes: likes}
}

func (s *Like) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	if err := s.threads.FindThreadById(ctx, threadId); err != nil {
		return false, err
	}
	if err := s.comments.FindCommentById(ctx, threadId, commentId); err != nil {
		return false, err
	}

	likeId, err := s.likes.FindCommentLikeId(ctx, commentId, userId)
	if err != nil {
		return false, err
	}

	liked := likeId == ""
	if liked {
		_, err = s.likes.AddCommentLike(ctx, commentId, userId)
	} else {
		err = s.likes.DeleteCommentLikeById(ctx, likeId)
		// A concurrent toggle removed it first; the comment is unliked either way
		if internal_errors.Is[*internal_errors.NotFoundError](err) {
			err = nil
		}
	}
	if err != nil {
		return false, err
	}
	metrics.LikeToggled(liked)
	return liked, nil
}
