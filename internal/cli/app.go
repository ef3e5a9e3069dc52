// Package cli is the session view: a read, eval, print loop over the user and
// post repositories, covering the sign-in, registration, users and posts
// screens.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olehkhomyk/feedline/internal/config"
	"github.com/olehkhomyk/feedline/internal/logging"
	"github.com/olehkhomyk/feedline/internal/repositories/posts"
	"github.com/olehkhomyk/feedline/internal/repositories/users"
	"github.com/olehkhomyk/feedline/internal/session"
	"github.com/olehkhomyk/feedline/internal/storage"
	bboltstore "github.com/olehkhomyk/feedline/internal/storage/bbolt"
	"github.com/olehkhomyk/feedline/internal/storage/memory"
	sqlitestore "github.com/olehkhomyk/feedline/internal/storage/sqlite"

	_ "modernc.org/sqlite"
)

// App wires the repositories to the REPL screens.
type App struct {
	config  *config.Config
	logger  logging.Logger
	durable storage.Gateway
	users   *users.Repository
	posts   *posts.Repository

	authenticated bool
	reader        *bufio.Reader
	out           io.Writer
}

// NewApp opens the configured durable store and builds the repositories.
// The session token lives in a fresh volatile store, so a restart always
// begins signed out (the sessionStorage analog).
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	durable, err := openDurable(ctx, c)
	if err != nil {
		return nil, err
	}

	sessions := session.NewManager(memory.New(), []byte(c.SessionSecret), c.SessionValidity)
	ur := users.NewRepository(durable, sessions, logger)
	pr := posts.NewRepository(durable, ur, logger)

	return &App{
		config:  c,
		logger:  logger,
		durable: durable,
		users:   ur,
		posts:   pr,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func openDurable(ctx context.Context, c *config.Config) (storage.Gateway, error) {
	switch c.StorageBackend {
	case config.BackendBBolt:
		return bboltstore.Open(c.StoragePath)
	case config.BackendSQLite:
		return sqlitestore.Open(ctx, c.StoragePath)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
}

// Run initializes both repositories exactly once, establishes the routing
// state via the authorization check, and enters the REPL. It returns when
// the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	defer a.durable.Close()

	if err := a.users.Initialize(ctx); err != nil {
		return err
	}
	if err := a.posts.Initialize(ctx); err != nil {
		return err
	}

	ok, err := a.users.CheckAuthorization(ctx)
	if err != nil {
		return err
	}
	a.authenticated = ok

	fmt.Fprintln(a.out, "feedline (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.authenticated
}

// status is the REPL prompt suffix: the signed-in login or "sign-in".
func (a *App) status() string {
	if !a.authenticated {
		return "sign-in"
	}
	cur, err := a.users.CurrentUser()
	if err != nil {
		return "sign-in"
	}
	return cur.Name
}
