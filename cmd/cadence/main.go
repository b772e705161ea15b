package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/cli/backups"
	"github.com/julianstephens/cadence/internal/cli/categories"
	"github.com/julianstephens/cadence/internal/cli/system"
	"github.com/julianstephens/cadence/internal/cli/tasks"
	"github.com/julianstephens/cadence/internal/cli/views"
	"github.com/julianstephens/cadence/internal/config"
	"github.com/julianstephens/cadence/internal/constants"
	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/storage"
	"github.com/julianstephens/cadence/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Config file path." type:"path" default:"${config_path}"`
	Database string `help:"SQLite path or PostgreSQL connection string (overrides the config). PostgreSQL passwords must be stored with 'cadence keyring set'."`
	Owner    string `help:"Owner identity to act as (overrides the config)."`
	Debug    bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize cadence storage and the default categories."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Today   views.TodayCmd    `cmd:"" help:"Show today's tasks." default:"1"`
	Day     views.DayCmd      `cmd:"" help:"Show the tasks for a day."`
	Week    views.WeekCmd     `cmd:"" help:"Show the Monday to Sunday week containing a date."`
	Range   views.RangeCmd    `cmd:"" help:"Show the tasks for every day in a date range."`
	Task    struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task and its completion history."`
		Toggle tasks.TaskToggleCmd `cmd:"" help:"Toggle a task's completion for a date."`
		Show   tasks.TaskShowCmd   `cmd:"" help:"Show a task's details."`
		List   tasks.TaskListCmd   `cmd:"" help:"List all tasks."`
	} `cmd:"" help:"Manage tasks."`
	Category struct {
		Add      categories.CategoryAddCmd      `cmd:"" help:"Add a category."`
		Edit     categories.CategoryEditCmd     `cmd:"" help:"Edit a category."`
		Delete   categories.CategoryDeleteCmd   `cmd:"" help:"Delete a category no task uses."`
		List     categories.CategoryListCmd     `cmd:"" help:"List categories." default:"1"`
		Defaults categories.CategoryDefaultsCmd `cmd:"" help:"Create the default categories if you have none."`
	} `cmd:"" help:"Manage categories."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage SQLite database backups."`
	Keyring struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string with its password masked."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status system.KeyringStatusCmd `cmd:"" help:"Check whether the OS keyring is available."`
	} `cmd:"" help:"Manage the database connection string in the OS keyring."`
	Export system.ExportCmd `cmd:"" help:"Export your categories, tasks and completions as YAML."`
	Remind system.RemindCmd `cmd:"" help:"Print a daily digest of open tasks at a fixed time."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Recurring task agenda with per-day completion tracking"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}
	if CLI.Database != "" {
		cfg.Database = CLI.Database
	}
	if CLI.Owner != "" {
		cfg.Owner = strings.TrimSpace(CLI.Owner)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, Dir: cfg.LogDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	loc, err := utils.LoadLocation(cfg.Timezone)
	if err != nil {
		apperrors.Fatal(err)
	}

	command := strings.Fields(kctx.Command())[0]

	// Keyring commands manage the DSN, so they must run without one
	var store storage.Provider
	if command != "keyring" {
		dsn, err := cfg.DatabaseDSN()
		if err != nil {
			apperrors.Fatal(err)
		}
		store = cli.NewStore(dsn)

		// init, migrate and doctor open the database themselves
		if command != "init" && command != "migrate" && command != "doctor" {
			if err := store.Load(); err != nil {
				apperrors.Fatal(err)
			}
		}
	}

	appCtx := cli.NewContext(context.Background(), cfg, store, loc)
	logger.Debug("Running command", "command", kctx.Command(), "owner", cfg.Owner)

	err = kctx.Run(appCtx)
	if store != nil {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("Failed to close database", "error", closeErr)
		}
	}
	apperrors.Fatal(err)
}
