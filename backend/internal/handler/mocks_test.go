package handler

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

// --- Mocks ---

type MockThreadService struct {
	MockCreate func(payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	MockGet    func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) Get(ctx context.Context, id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockCreate func(payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockCommentService) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, owner)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, userId)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

func (m *MockReplyService) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, commentId, owner)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, userId)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error)
}

func (m *MockLikeService) Toggle(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	if m.MockToggle != nil {
		return m.MockToggle(threadId, commentId, userId)
	}
	return true, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
