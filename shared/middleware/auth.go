package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/itchan-dev/forum/shared/domain"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/itchan-dev/forum/shared/utils"
)

// Key to store the user in the request context
type key int

const UserClaimsKey key = 0

// Auth verifies access tokens issued by the user directory.
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				if errors.Is(err, errInvalidClaims) {
					logger.From(r.Context()).Warn("invalid jwt claims")
				}
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// extractUser reads the token from the accessToken cookie or the Authorization header.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokenString string
	if accessCookie, err := r.Cookie("accessToken"); err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return nil, errInvalidClaims
	}

	username, ok := claims["username"].(string)
	if !ok {
		return nil, errInvalidClaims
	}

	return &domain.User{Id: uid, Username: username}, nil
}

var (
	errNoToken       = &internal_errors.ErrorWithStatusCode{Message: "Please sign-in", Code: http.StatusUnauthorized}
	errInvalidClaims = &internal_errors.ErrorWithStatusCode{Message: "Invalid token", Code: http.StatusUnauthorized}
)

// WithUser stores the caller in ctx.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserClaimsKey, user)
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
