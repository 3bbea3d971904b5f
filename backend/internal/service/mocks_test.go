package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum/shared/domain"
)

// --- Mocks ---

// MockStorage implements every storage interface of the package.
// Unset funcs succeed with zero values. Calls are recorded in order.
type MockStorage struct {
	addThreadFunc     func(thread domain.AddThread, owner domain.UserId) (domain.AddedThread, error)
	findThreadFunc    func(id domain.ThreadId) error
	getThreadFunc     func(id domain.ThreadId) (domain.ThreadRow, error)
	addCommentFunc    func(comment domain.AddComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	getCommentsFunc   func(threadId domain.ThreadId) ([]domain.CommentRow, error)
	findCommentFunc   func(threadId domain.ThreadId, id domain.CommentId) error
	verifyCommentFunc func(id domain.CommentId, userId domain.UserId) error
	deleteCommentFunc func(id domain.CommentId, threadId domain.ThreadId) error
	addReplyFunc      func(reply domain.AddComment, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	getRepliesFunc    func(threadId domain.ThreadId) ([]domain.ReplyRow, error)
	findReplyFunc     func(commentId domain.CommentId, id domain.ReplyId) error
	verifyReplyFunc   func(id domain.ReplyId, userId domain.UserId) error
	deleteReplyFunc   func(id domain.ReplyId, commentId domain.CommentId) error
	findLikeFunc      func(commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error)
	addLikeFunc       func(commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error)
	deleteLikeFunc    func(id domain.LikeId) error
	getLikeCountsFunc func(threadId domain.ThreadId) (domain.LikeCounts, error)

	mu    sync.Mutex
	calls []string
}

func (m *MockStorage) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *MockStorage) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockStorage) AddThread(ctx context.Context, thread domain.AddThread, owner domain.UserId) (domain.AddedThread, error) {
	m.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread, owner)
	}
	return domain.AddedThread{Id: "thread-1", Title: thread.Title, Owner: owner}, nil
}

func (m *MockStorage) FindThreadById(ctx context.Context, id domain.ThreadId) error {
	m.record("FindThreadById")
	if m.findThreadFunc != nil {
		return m.findThreadFunc(id)
	}
	return nil
}

func (m *MockStorage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	m.record("GetThreadById")
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.ThreadRow{}, nil
}

func (m *MockStorage) AddComment(ctx context.Context, comment domain.AddComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	m.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment, threadId, owner)
	}
	return domain.AddedComment{Id: "comment-1", Content: comment.Content, Owner: owner}, nil
}

func (m *MockStorage) GetCommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.record("GetCommentsByThread")
	if m.getCommentsFunc != nil {
		return m.getCommentsFunc(threadId)
	}
	return []domain.CommentRow{}, nil
}

func (m *MockStorage) FindCommentById(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) error {
	m.record("FindCommentById")
	if m.findCommentFunc != nil {
		return m.findCommentFunc(threadId, id)
	}
	return nil
}

func (m *MockStorage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, userId domain.UserId) error {
	m.record("VerifyCommentOwner")
	if m.verifyCommentFunc != nil {
		return m.verifyCommentFunc(id, userId)
	}
	return nil
}

func (m *MockStorage) DeleteComment(ctx context.Context, id domain.CommentId, threadId domain.ThreadId) error {
	m.record("DeleteComment")
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id, threadId)
	}
	return nil
}

func (m *MockStorage) AddReply(ctx context.Context, reply domain.AddComment, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	m.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply, commentId, owner)
	}
	return domain.AddedReply{Id: "reply-1", Content: reply.Content, Owner: owner}, nil
}

func (m *MockStorage) GetRepliesByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRow, error) {
	m.record("GetRepliesByThread")
	if m.getRepliesFunc != nil {
		return m.getRepliesFunc(threadId)
	}
	return []domain.ReplyRow{}, nil
}

func (m *MockStorage) FindReplyById(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) error {
	m.record("FindReplyById")
	if m.findReplyFunc != nil {
		return m.findReplyFunc(commentId, id)
	}
	return nil
}

func (m *MockStorage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, userId domain.UserId) error {
	m.record("VerifyReplyOwner")
	if m.verifyReplyFunc != nil {
		return m.verifyReplyFunc(id, userId)
	}
	return nil
}

func (m *MockStorage) DeleteReply(ctx context.Context, id domain.ReplyId, commentId domain.CommentId) error {
	m.record("DeleteReply")
	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(id, commentId)
	}
	return nil
}

func (m *MockStorage) FindCommentLikeId(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	m.record("FindCommentLikeId")
	if m.findLikeFunc != nil {
		return m.findLikeFunc(commentId, userId)
	}
	return "", nil
}

func (m *MockStorage) AddCommentLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	m.record("AddCommentLike")
	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, userId)
	}
	return "like-1", nil
}

func (m *MockStorage) DeleteCommentLikeById(ctx context.Context, id domain.LikeId) error {
	m.record("DeleteCommentLikeById")
	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(id)
	}
	return nil
}

func (m *MockStorage) GetLikeCountsByThread(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error) {
	m.record("GetLikeCountsByThread")
	if m.getLikeCountsFunc != nil {
		return m.getLikeCountsFunc(threadId)
	}
	return domain.LikeCounts{}, nil
}
