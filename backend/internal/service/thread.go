package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// to mock service in tests
type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
	likes    LikeStorage
}

func NewThread(threads ThreadStorage, comments CommentStorage, replies ReplyStorage, likes LikeStorage) ThreadService {
	return &Thread{threads: threads, comments: comments, replies: replies, likes: likes}
}

func (s *Thread) Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	thread, err := domain.NewAddThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := s.threads.AddThread(ctx, thread, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}
	metrics.ContentCreated(metrics.KindThread)
	return added, nil
}

// Get returns the thread with its comments, replies and like counts.
func (s *Thread) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	header, err := s.threads.GetThreadById(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	comments, err := s.comments.GetCommentsByThread(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	replies, err := s.replies.GetRepliesByThread(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	likes, err := s.likes.GetLikeCountsByThread(ctx, id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	return assembleThread(header, comments, replies, likes)
}
