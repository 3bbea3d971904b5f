package middleware

import (
	"errors"
	"net/http"

	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/middleware/ratelimiter"
	"github.com/itchan-dev/forum/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				w.Header().Set("Retry-After", "1")
				utils.WriteErrorAndStatusCode(w, errRateLimited)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

var errRateLimited = &internal_errors.ErrorWithStatusCode{Message: "Rate limit exceeded, try again later", Code: http.StatusTooManyRequests}

// GetUserIDFromContext is an identity for RateLimit.
// Possible if user was authorized with previous middleware
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New("can't get user id")
	}
	return "user_" + user.Id, nil
}
