package system

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/cadence/internal/models"
)

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx, _, out := setupTestSystem(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := ctx.Service.CreateTask(ctx.Context(), models.TaskInput{Title: "Walk", DueDate: "2024-01-10"}); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	out.Reset()

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, out.String())
	}
	got := out.String()
	for _, want := range []string{"✓ Database reachable: OK", "✓ Stored data valid: OK", "⚠ Backups present: WARNING", "Keyring available: SKIPPED"} {
		if !strings.Contains(got, want) {
			t.Errorf("doctor output missing %q:\n%s", want, got)
		}
	}
}

func TestDoctorCmd_Uninitialized(t *testing.T) {
	ctx, _, out := setupTestSystem(t)

	err := (&DoctorCmd{}).Run(ctx)
	if !errors.Is(err, errDoctorFailed) {
		t.Fatalf("doctor error = %v, want errDoctorFailed", err)
	}
	got := out.String()
	if !strings.Contains(got, "❌ Database reachable: FAIL") || !strings.Contains(got, "Stored data valid: SKIPPED") {
		t.Errorf("unexpected doctor output:\n%s", got)
	}
}
