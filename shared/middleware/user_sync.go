package middleware

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// UserSaver stores a copy of a directory user locally.
type UserSaver interface {
	SaveUser(ctx context.Context, user domain.User) error
}

// SyncUser upserts the token's user before the request reaches a handler,
// so content written by the request can reference it.
// Must run after NeedAuth.
func SyncUser(users UserSaver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r)
			if user == nil {
				utils.WriteErrorAndStatusCode(w, errNoToken)
				return
			}
			if err := users.SaveUser(r.Context(), *user); err != nil {
				log := logger.From(r.Context())
				if internal_errors.StatusCode(err) >= http.StatusInternalServerError {
					log.Error("failed to sync user", "user_id", user.Id, "error", err)
				} else {
					log.Warn("user sync rejected", "user_id", user.Id, "error", err)
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
