package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// HealthChecker is implemented by the storage.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	like    service.LikeService
	health  HealthChecker
}

func New(thread service.ThreadService, comment service.CommentService, reply service.ReplyService, like service.LikeService, health HealthChecker) *Handler {
	return &Handler{
		thread:  thread,
		comment: comment,
		reply:   reply,
		like:    like,
		health:  health,
	}
}

var errUnauthorized = &internal_errors.ErrorWithStatusCode{Message: "Please sign-in", Code: http.StatusUnauthorized}

// currentUser returns the caller put into the context by the auth middleware.
func currentUser(r *http.Request) (*domain.User, error) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		return nil, errUnauthorized
	}
	return user, nil
}
