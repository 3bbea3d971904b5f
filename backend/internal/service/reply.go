package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

type Reply struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewReply(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) ReplyService {
	return &Reply{threads: threads, comments: comments, replies: replies}
}

func (s *Reply) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	reply, err := domain.NewAddComment(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.parentsExist(ctx, threadId, commentId); err != nil {
		return domain.AddedReply{}, err
	}

	added, err := s.replies.AddReply(ctx, reply, commentId, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}
	metrics.ContentCreated(metrics.KindReply)
	return added, nil
}

func (s *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if err := s.parentsExist(ctx, threadId, commentId); err != nil {
		return err
	}
	if err := s.replies.FindReplyById(ctx, commentId, replyId); err != nil {
		return err
	}
	if err := requireOwner(ctx, s.replies.VerifyReplyOwner, replyId, userId); err != nil {
		return err
	}

	if err := s.replies.DeleteReply(ctx, replyId, commentId); err != nil {
		return err
	}
	metrics.ContentDeleted(metrics.KindReply)
	return nil
}

func (s *Reply) parentsExist(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId) error {
	if err := s.threads.FindThreadById(ctx, threadId); err != nil {
		return err
	}
	return s.comments.FindCommentById(ctx, threadId, commentId)
}
