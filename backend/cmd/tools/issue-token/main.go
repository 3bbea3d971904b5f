// issue-token registers a user row and prints an access token for it.
// Accounts are owned by an external user directory; this is for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/jwt"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
	"github.com/itchan-dev/forum/shared/utils"
)

func main() {
	var configFolder, id, username string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&id, "id", "", "user id (generated when empty)")
	flag.StringVar(&username, "username", "", "username")
	flag.Parse()

	if username == "" {
		fmt.Fprintln(os.Stderr, "-username is required")
		os.Exit(2)
	}
	if id == "" {
		id = utils.PrefixedId("user", nil)
	}

	cfg := config.MustLoad(configFolder)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sharedpg.Connect(ctx, cfg.Private.Pg, sharedpg.LightweightConnectionConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	storage := pg.NewWithDB(db, nil)
	defer storage.Cleanup()

	user := domain.User{Id: id, Username: username}
	if err := storage.SaveUser(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "save user: %v\n", err)
		os.Exit(1)
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("user_id=%s\ntoken=%s\n", user.Id, token)
}
