package system

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/cadence/internal/agenda"
	"github.com/julianstephens/cadence/internal/auth"
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/clock"
	"github.com/julianstephens/cadence/internal/config"
	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/storage/sqlite"
)

var now = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func setupTestSystem(t *testing.T) (*cli.Context, string, *bytes.Buffer) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	var out bytes.Buffer
	cfg := &config.Config{Owner: "alice", RemindAt: "08:00"}
	ctx := cli.NewContext(context.Background(), cfg, store, time.UTC)
	ctx.Service = agenda.New(store, auth.Static("alice"), clock.Fixed(now))
	ctx.Out = &out
	return ctx, dbPath, &out
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, out := setupTestSystem(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
	if !strings.Contains(out.String(), "3 categories available") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, _ := setupTestSystem(t)
	cmd := &InitCmd{}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}

	cats, err := ctx.Service.ListCategories(ctx.Context())
	if err != nil {
		t.Fatalf("ListCategories() error: %v", err)
	}
	if len(cats) != 3 {
		t.Errorf("got %d categories after two inits, want 3", len(cats))
	}
}

func TestInitCmd_NoDefaults(t *testing.T) {
	ctx, _, _ := setupTestSystem(t)
	if err := (&InitCmd{NoDefaults: true}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	cats, err := ctx.Service.ListCategories(ctx.Context())
	if err != nil {
		t.Fatalf("ListCategories() error: %v", err)
	}
	if len(cats) != 0 {
		t.Errorf("got %d categories, want none", len(cats))
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, _ := setupTestSystem(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("initial init failed: %v", err)
	}
	if _, err := ctx.Service.CreateTask(ctx.Context(), models.TaskInput{Title: "Old", DueDate: "2024-01-10"}); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init with force failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not recreated after force")
	}

	tasks, err := ctx.Service.ListTasks(ctx.Context())
	if err != nil {
		t.Fatalf("ListTasks() error: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("got %d tasks after force, want 0", len(tasks))
	}
}

func TestMigrateCmd_UpToDate(t *testing.T) {
	ctx, _, out := setupTestSystem(t)
	if err := (&InitCmd{NoDefaults: true}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	out.Reset()

	if err := (&MigrateCmd{NoBackup: true}).Run(ctx); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if !strings.Contains(out.String(), "up to date") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestExportCmd(t *testing.T) {
	ctx, _, _ := setupTestSystem(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	task, err := ctx.Service.CreateTask(ctx.Context(), models.TaskInput{
		Title:      "Journal",
		DueDate:    "2024-01-01",
		Recurrence: constants.RecurrenceDaily,
	})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if _, err := ctx.Service.ToggleCompletion(ctx.Context(), task.ID, "2024-01-09"); err != nil {
		t.Fatalf("ToggleCompletion() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "export.yaml")
	if err := (&ExportCmd{Output: path}).Run(ctx); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	var snap agenda.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if snap.Owner != "alice" || len(snap.Tasks) != 1 || len(snap.Categories) != 3 || len(snap.Completions) != 1 {
		t.Errorf("unexpected snapshot: owner=%q tasks=%d categories=%d completions=%d",
			snap.Owner, len(snap.Tasks), len(snap.Categories), len(snap.Completions))
	}
	if snap.Tasks[0].Title != "Journal" || snap.Tasks[0].Recurrence != constants.RecurrenceDaily {
		t.Errorf("unexpected task: %+v", snap.Tasks[0])
	}
}

func TestRemindCmd_Once(t *testing.T) {
	ctx, _, out := setupTestSystem(t)
	if err := (&InitCmd{NoDefaults: true}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	open, err := ctx.Service.CreateTask(ctx.Context(), models.TaskInput{Title: "Call plumber", DueDate: "2024-01-10"})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	done, err := ctx.Service.CreateTask(ctx.Context(), models.TaskInput{Title: "Pay rent", DueDate: "2024-01-10"})
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if _, err := ctx.Service.ToggleCompletion(ctx.Context(), done.ID, "2024-01-10"); err != nil {
		t.Fatalf("ToggleCompletion() error: %v", err)
	}
	out.Reset()

	if err := (&RemindCmd{Once: true}).Run(ctx); err != nil {
		t.Fatalf("remind failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, open.Title) || strings.Contains(got, done.Title) {
		t.Errorf("digest should list only open tasks:\n%s", got)
	}
	if !strings.Contains(got, "1 open") {
		t.Errorf("digest missing count:\n%s", got)
	}
}

func TestRemindCmd_InvalidTime(t *testing.T) {
	ctx, _, _ := setupTestSystem(t)
	if err := (&RemindCmd{At: "8am"}).Run(ctx); err == nil {
		t.Error("remind should reject an invalid time")
	}
}
