package setup

import (
	"context"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/jwt"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/ratelimiter"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config           *config.Config
	Storage          *pg.Storage
	Handler          *handler.Handler
	Jwt              jwt.JwtService
	AuthMiddleware   *mw.Auth
	WriteRateLimiter *ratelimiter.UserRateLimiter
	// Users receives every authenticated writer before its request is handled
	Users mw.UserSaver
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	thread := service.NewThread(storage, storage, storage, storage)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage, storage)
	like := service.NewLike(storage, storage, storage)

	var writeLimiter *ratelimiter.UserRateLimiter
	if rl := cfg.Public.RateLimit; rl.WritesPerSecond > 0 {
		burst := max(rl.Burst, 1)
		writeLimiter = ratelimiter.New(rl.WritesPerSecond, burst, rl.Expiration)
	}

	return &Dependencies{
		Config:           cfg,
		Storage:          storage,
		Handler:          handler.New(thread, comment, reply, like, storage),
		Jwt:              jwtService,
		AuthMiddleware:   mw.NewAuth(jwtService),
		WriteRateLimiter: writeLimiter,
		Users:            storage,
	}, nil
}

// Cleanup releases what SetupDependencies acquired.
func (d *Dependencies) Cleanup() error {
	if d.WriteRateLimiter != nil {
		d.WriteRateLimiter.Stop()
	}
	return d.Storage.Cleanup()
}
