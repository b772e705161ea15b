package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/keyring"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

type InitCmd struct {
	Force      bool `help:"Delete an existing SQLite database before initialization."`
	NoDefaults bool `help:"Do not create the default categories."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if _, ok := ctx.Store.(*sqlite.Store); !ok {
			return fmt.Errorf("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first so the file is not locked
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			for _, suffix := range []string{"", "-wal", "-shm"} {
				if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
					return fmt.Errorf("failed to delete existing database: %w", err)
				}
			}
			ctx.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized cadence storage at: %s\n", displayLocation(ctx))

	if c.NoDefaults {
		return nil
	}
	cats, err := ctx.Service.InitializeDefaultCategories(ctx.Context())
	if err != nil {
		return fmt.Errorf("failed to create default categories: %w", err)
	}
	ctx.Printf("%d categories available.\n", len(cats))
	return nil
}

// displayLocation hides PostgreSQL credentials that came from the keyring.
func displayLocation(ctx *cli.Context) string {
	location := ctx.Store.GetConfigPath()
	if cli.IsPostgresDSN(location) {
		return keyring.Mask(location)
	}
	return location
}
