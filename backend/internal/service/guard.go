package service

import (
	"context"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
)

type ownerVerifier func(ctx context.Context, id string, userId domain.UserId) error

// requireOwner passes only if userId owns the content item id.
// A missing item is a NotFoundError, a foreign one an AuthorizationError.
func requireOwner(ctx context.Context, verify ownerVerifier, id string, userId domain.UserId) error {
	err := verify(ctx, id, userId)
	if internal_errors.Is[*internal_errors.AuthorizationError](err) {
		logger.From(ctx).Warn("mutation of foreign content rejected", "content_id", id, "user_id", userId)
	}
	return err
}
