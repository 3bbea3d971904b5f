package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
)

type ThreadStorage interface {
	AddThread(ctx context.Context, thread domain.AddThread, owner domain.UserId) (domain.AddedThread, error)
	FindThreadById(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error)
}

type CommentStorage interface {
	AddComment(ctx context.Context, comment domain.AddComment, threadId domain.ThreadId, owner domain.UserId) (domain.AddedComment, error)
	GetCommentsByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
	FindCommentById(ctx context.Context, threadId domain.ThreadId, id domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, userId domain.UserId) error
	DeleteComment(ctx context.Context, id domain.CommentId, threadId domain.ThreadId) error
}

type ReplyStorage interface {
	AddReply(ctx context.Context, reply domain.AddComment, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	GetRepliesByThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ReplyRow, error)
	FindReplyById(ctx context.Context, commentId domain.CommentId, id domain.ReplyId) error
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, userId domain.UserId) error
	DeleteReply(ctx context.Context, id domain.ReplyId, commentId domain.CommentId) error
}

type LikeStorage interface {
	// FindCommentLikeId returns "" when the user has not liked the comment.
	FindCommentLikeId(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error)
	AddCommentLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (domain.LikeId, error)
	DeleteCommentLikeById(ctx context.Context, id domain.LikeId) error
	GetLikeCountsByThread(ctx context.Context, threadId domain.ThreadId) (domain.LikeCounts, error)
}
