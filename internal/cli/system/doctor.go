package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/cadence/internal/backup"
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/keyring"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
	"github.com/julianstephens/cadence/internal/utils"
)

var errDoctorFailed = errors.New("one or more health checks failed")

type DoctorCmd struct{}

type check struct {
	name      string
	opensDB   bool
	needsDB   bool
	warnOnly  bool
	run       func(ctx *cli.Context) error
	skippable func(ctx *cli.Context) bool
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	checks := []check{
		{name: "Database reachable", opensDB: true, run: checkDBReachable},
		{name: "Stored data valid", needsDB: true, run: checkTasks},
		{name: "Backups present", warnOnly: true, run: checkBackupsPresent, skippable: notSQLite},
		{name: "Clock/timezone", run: checkClockTimezone},
		{name: "Keyring available", run: checkKeyring, skippable: notKeyring},
	}

	hasError := false
	dbReachable := false
	for _, c := range checks {
		if c.skippable != nil && c.skippable(ctx) {
			ctx.Printf("⊘ %s: SKIPPED (not applicable)\n", c.name)
			continue
		}
		if c.needsDB && !dbReachable {
			ctx.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
			if c.opensDB {
				dbReachable = true
			}
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		return errDoctorFailed
	}
	ctx.Println("All checks passed.")
	return nil
}

// checkDBReachable opens the database and checks its schema version.
func checkDBReachable(ctx *cli.Context) error {
	if ctx.Store == nil {
		return errors.New("no database configured")
	}
	return ctx.Store.Load()
}

// checkTasks looks for stored tasks the recurrence evaluator would silently
// skip, and for category references that no longer resolve.
func checkTasks(ctx *cli.Context) error {
	tasks, err := ctx.Service.ListTasks(ctx.Context())
	if err != nil {
		return err
	}
	cats, err := ctx.CategoryIndex()
	if err != nil {
		return err
	}

	var problems []string
	for _, t := range tasks {
		if err := models.ValidateDate(t.DueDate); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", t.Title, err))
		}
		if t.DueTime != nil {
			if err := models.ValidateTime(*t.DueTime); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", t.Title, err))
			}
		}
		if !t.Recurrence.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown recurrence %q", t.Title, t.Recurrence))
		}
		if t.CategoryID != nil {
			if _, ok := cats[*t.CategoryID]; !ok {
				problems = append(problems, fmt.Sprintf("%s: missing category %s", t.Title, *t.CategoryID))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s): %v", len(problems), problems)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, run '%s backup create'", constants.AppName)
	}
	if age := time.Since(backups[0].Timestamp); age > 7*24*time.Hour {
		return fmt.Errorf("latest backup is %d days old", int(age.Hours()/24))
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	if ctx.Config != nil {
		if _, err := utils.LoadLocation(ctx.Config.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", ctx.Config.Timezone, err)
		}
	}
	if ctx.Service.Now().Year() < 2000 {
		return fmt.Errorf("system clock looks wrong: %s", ctx.Service.Now().Format(time.RFC3339))
	}
	return nil
}

func checkKeyring(*cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	_, err := keyring.GetDatabase()
	return err
}

func notSQLite(ctx *cli.Context) bool {
	_, ok := ctx.Store.(*sqlite.Store)
	return !ok
}

func notKeyring(ctx *cli.Context) bool {
	return ctx.Config == nil || ctx.Config.Database != constants.KeyringDatabase
}
