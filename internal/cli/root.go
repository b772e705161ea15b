package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/cadence/internal/agenda"
	"github.com/julianstephens/cadence/internal/auth"
	"github.com/julianstephens/cadence/internal/backup"
	"github.com/julianstephens/cadence/internal/clock"
	"github.com/julianstephens/cadence/internal/config"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/storage/postgres"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

type Context struct {
	Config   *config.Config
	Store    storage.Provider
	Service  *agenda.Service
	Location *time.Location
	Out      io.Writer

	ctx context.Context
}

// NewContext wires the agenda service for cfg.Owner on top of store. An owner
// placed on ctx with auth.WithOwner takes precedence over the configured one.
func NewContext(ctx context.Context, cfg *config.Config, store storage.Provider, loc *time.Location) *Context {
	if loc == nil {
		loc = time.Local
	}
	authn := auth.Chain{auth.Context{}, auth.Static(cfg.Owner)}
	return &Context{
		Config:   cfg,
		Store:    store,
		Service:  agenda.New(store, authn, clock.System{Location: loc}),
		Location: loc,
		ctx:      ctx,
	}
}

// Context returns the request context commands pass to the service.
func (c *Context) Context() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

func (c *Context) Writer() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Writer(), format, args...)
}

func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Writer(), args...)
}

// PerformAutomaticBackup snapshots a SQLite database and only logs failures.
// PostgreSQL deployments are expected to have their own backups.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// IsPostgresDSN reports whether dsn names a PostgreSQL database, as a URL or
// in key=value form.
func IsPostgresDSN(dsn string) bool {
	return storage.IsPostgres(dsn) || strings.Contains(dsn, "host=")
}

// NewStore returns the storage backend for dsn: PostgreSQL for connection
// strings, SQLite for everything else.
func NewStore(dsn string) storage.Provider {
	if IsPostgresDSN(dsn) {
		return postgres.New(dsn)
	}
	return sqlite.NewStore(dsn)
}
