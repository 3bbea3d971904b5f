package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
)

type memContent struct {
	id, parent, owner, content string
	created                    time.Time
	deleted                    bool
}

// memStore is an in-memory implementation of the storage interfaces
// with the same not found and ownership semantics as the postgres one.
type memStore struct {
	mu       sync.Mutex
	seq      int
	clock    time.Time
	users    map[domain.UserId]domain.Username
	threads  map[domain.ThreadId]domain.ThreadRow
	comments []*memContent
	replies  []*memContent
	likes    map[domain.LikeId][2]string
}

func newMemStore(users ...domain.User) *memStore {
	s := &memStore{
		clock:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:   map[domain.UserId]domain.Username{},
		threads: map[domain.ThreadId]domain.ThreadRow{},
		likes:   map[domain.LikeId][2]string{},
	}
	for _, u := range users {
		s.users[u.Id] = u.Username
	}
	return s
}

func (s *memStore) next(prefix string) (string, time.Time) {
	s.seq++
	s.clock = s.clock.Add(time.Second)
	return fmt.Sprintf("%s-%d", prefix, s.seq), s.clock
}

func (s *memStore) AddThread(ctx context.Context, thread domain.AddThread, owner domain.UserId) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, now := s.next("thread")
	s.threads[id] = domain.ThreadRow{Id: id, Title: thread.Title, Body: thread.Body, CreatedAt: now, Username: s.users[owner]}
	return domain.NewAddedThread(id, thread.Title, owner)
}

func (s *memStore) FindThreadById(ctx context.Context, id domain.ThreadId) error {
	_, err := s.GetThreadById(ctx, id)
	return err
}

func (s *memStore) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.threads[id]
	if !ok {
		return domain.ThreadRow{}, internal_errors.NotFound("thread not found")
	}
	return row, nil
}

func (s *memStore) AddComment(ctx context.Context, comment domain.AddComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, now := s.next("comment")
	s.comments = append(s.comments, &memContent{id: id, parent: threadId, owner: owner, content: comment.Content, created: now})
	return domain.NewAddedComment(id, comment.Content, owner)
}

func (s *memStore) GetCommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.CommentRow{}
	for _, c := range s.comments {
		if c.parent == threadId {
			rows = append(rows, domain.CommentRow{Id: c.id, ThreadId: c.parent, Content: c.content, Username: s.users[c.owner], CreatedAt: c.created, IsDeleted: c.deleted})
		}
	}
	return rows, nil
}

func find(items []*memContent, id string) *memContent {
	for _, c := range items {
		if c.id == id {
			return c
		}
	}
	return nil
}

func (s *memStore) FindCommentById(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c := find(s.comments, id); c == nil || c.parent != threadId {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}

func verifyOwner(items []*memContent, id string, userId domain.UserId, kind string) error {
	c := find(items, id)
	if c == nil {
		return internal_errors.NotFound("%s not found", kind)
	}
	if c.owner != userId {
		return internal_errors.Forbidden("you are not the owner of this %s", kind)
	}
	return nil
}

func (s *memStore) VerifyCommentOwner(ctx context.Context, id domain.CommentId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return verifyOwner(s.comments, id, userId, "comment")
}

func (s *memStore) DeleteComment(ctx context.Context, id domain.CommentId, threadId domain.ThreadId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := find(s.comments, id)
	if c == nil || c.parent != threadId {
		return internal_errors.NotFound("comment not found")
	}
	c.deleted = true
	return nil
}

func (s *memStore) AddReply(ctx context.Context, reply domain.AddComment, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, now := s.next("reply")
	s.replies = append(s.replies, &memContent{id: id, parent: commentId, owner: owner, content: reply.Content, created: now})
	return domain.NewAddedReply(id, reply.Content, owner)
}

func (s *memStore) GetRepliesByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []domain.ReplyRow{}
	for _, r := range s.replies {
		if c := find(s.comments, r.parent); c != nil && c.parent == threadId {
			rows = append(rows, domain.ReplyRow{Id: r.id, CommentId: r.parent, Content: r.content, Username: s.users[r.owner], CreatedAt: r.created, IsDeleted: r.deleted})
		}
	}
	return rows, nil
}

func (s *memStore) FindReplyById(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r := find(s.replies, id); r == nil || r.parent != commentId {
		return internal_errors.NotFound("reply not found")
	}
	return nil
}

func (s *memStore) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return verifyOwner(s.replies, id, userId, "reply")
}

func (s *memStore) DeleteReply(ctx context.Context, id domain.ReplyId, commentId domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := find(s.replies, id)
	if r == nil || r.parent != commentId {
		return internal_errors.NotFound("reply not found")
	}
	r.deleted = true
	return nil
}

func (s *memStore) FindCommentLikeId(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, l := range s.likes {
		if l == [2]string{commentId, userId} {
			return id, nil
		}
	}
	return "", nil
}

func (s *memStore) AddCommentLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, _ := s.next("like")
	s.likes[id] = [2]string{commentId, userId}
	return id, nil
}

func (s *memStore) DeleteCommentLikeById(ctx context.Context, id domain.LikeId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.likes[id]; !ok {
		return internal_errors.NotFound("like not found")
	}
	delete(s.likes, id)
	return nil
}

func (s *memStore) GetLikeCountsByThread(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := domain.LikeCounts{}
	for _, l := range s.likes {
		if c := find(s.comments, l[0]); c != nil && c.parent == threadId {
			counts[l[0]]++
		}
	}
	return counts, nil
}
