package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
	"github.com/itchan-dev/forum/shared/utils"
)

// Id prefixes of stored entities.
const (
	threadPrefix  = "thread"
	commentPrefix = "comment"
	replyPrefix   = "reply"
	likePrefix    = "like"
)

type Storage struct {
	db    *sql.DB
	newId utils.IdGenerator
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewWithDB(db, utils.NewIdSuffix), nil
}

// NewWithDB wraps an open pool. newId may be nil for the default generator.
func NewWithDB(db *sql.DB, newId utils.IdGenerator) *Storage {
	if newId == nil {
		newId = utils.NewIdSuffix
	}
	return &Storage{db: db, newId: newId}
}

func (s *Storage) id(prefix string) string {
	return utils.PrefixedId(prefix, s.newId)
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
