package agenda

import (
	"context"
	"testing"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

func TestExport(t *testing.T) {
	svc, _ := setupService(t)
	ctx := as("alice")

	cat, err := svc.CreateCategory(ctx, models.CategoryInput{Name: "Work"})
	if err != nil {
		t.Fatalf("CreateCategory() error: %v", err)
	}
	task := mustCreateTask(t, svc, ctx, models.TaskInput{
		Title:      "Standup",
		CategoryID: &cat.ID,
		DueDate:    "2024-01-08",
		Recurrence: constants.RecurrenceDaily,
	})
	if _, err := svc.ToggleCompletion(ctx, task.ID, "2024-01-09"); err != nil {
		t.Fatalf("ToggleCompletion() error: %v", err)
	}
	mustCreateTask(t, svc, as("bob"), models.TaskInput{Title: "Other", DueDate: "2024-01-08"})

	snap, err := svc.Export(ctx)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if snap.Owner != "alice" {
		t.Errorf("Owner = %q, want alice", snap.Owner)
	}
	if !snap.ExportedAt.Equal(now) {
		t.Errorf("ExportedAt = %v, want %v", snap.ExportedAt, now)
	}
	if len(snap.Categories) != 1 || len(snap.Tasks) != 1 || len(snap.Completions) != 1 {
		t.Fatalf("got %d categories, %d tasks, %d completions; want 1 each",
			len(snap.Categories), len(snap.Tasks), len(snap.Completions))
	}
	if snap.Completions[0].Date != "2024-01-09" {
		t.Errorf("completion date = %q, want 2024-01-09", snap.Completions[0].Date)
	}
}

func TestExportUnauthenticated(t *testing.T) {
	svc, _ := setupService(t)
	mustCreateTask(t, svc, as("alice"), models.TaskInput{Title: "Mine", DueDate: "2024-01-08"})

	snap, err := svc.Export(context.Background())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if snap.Owner != "" || len(snap.Tasks) != 0 {
		t.Errorf("unauthenticated export = %+v, want empty", snap)
	}
}
