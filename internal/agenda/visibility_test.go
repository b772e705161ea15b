package agenda

import (
	"context"
	"errors"
	"testing"

	"github.com/julianstephens/cadence/internal/auth"
	"github.com/julianstephens/cadence/internal/clock"
	"github.com/julianstephens/cadence/internal/constants"
	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/models"
)

func TestListForDateOrdering(t *testing.T) {
	svc, _ := setupService(t)
	ctx := as("alice")

	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Evening walk", DueDate: "2024-01-10", DueTime: strPtr("18:00")})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Laundry", DueDate: "2024-01-10"})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Standup", DueDate: "2024-01-03", DueTime: strPtr("09:00"), Recurrence: constants.RecurrenceWeekly})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Vitamins", DueDate: "2024-01-01", Recurrence: constants.RecurrenceDaily})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Lunch", DueDate: "2024-01-10", DueTime: strPtr("12:30")})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Tomorrow", DueDate: "2024-01-11"})

	got, err := svc.ListForDate(ctx, "2024-01-10", Filter{})
	if err != nil {
		t.Fatalf("ListForDate() error: %v", err)
	}

	want := []string{"Vitamins", "Laundry", "Standup", "Lunch", "Evening walk"}
	if !equalStrings(titles(got), want) {
		t.Errorf("ListForDate() = %v, want %v", titles(got), want)
	}
	for i, inst := range got {
		if inst.Date != "2024-01-10" {
			t.Errorf("instance %d Date = %q", i, inst.Date)
		}
		if i > 0 && got[i-1].DueTime != nil && inst.DueTime == nil {
			t.Errorf("all-day task %q sorted after a timed task", inst.Title)
		}
		if i > 0 && got[i-1].DueTime != nil && inst.DueTime != nil && *got[i-1].DueTime > *inst.DueTime {
			t.Errorf("times out of order at %d", i)
		}
	}
}

func TestListForDateCategoryFilter(t *testing.T) {
	svc, _ := setupService(t)
	ctx := as("alice")

	work := mustCreateCategory(t, svc, ctx, "Work")
	home := mustCreateCategory(t, svc, ctx, "Home")

	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Report", DueDate: "2024-01-10", CategoryID: &work.ID})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Dishes", DueDate: "2024-01-10", CategoryID: &home.ID})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Uncategorized", DueDate: "2024-01-10"})

	got, err := svc.ListForDate(ctx, "2024-01-10", Filter{CategoryID: work.ID})
	if err != nil {
		t.Fatalf("ListForDate() error: %v", err)
	}
	if !equalStrings(titles(got), []string{"Report"}) {
		t.Errorf("filtered ListForDate() = %v, want [Report]", titles(got))
	}
	for _, inst := range got {
		if !inst.HasCategory(work.ID) {
			t.Errorf("task %q does not match the filter", inst.Title)
		}
	}

	all, _ := svc.ListForDate(ctx, "2024-01-10", Filter{})
	if len(all) != 3 {
		t.Errorf("unfiltered ListForDate() returned %d tasks, want 3", len(all))
	}
}

func TestListForDateCompletionOverlay(t *testing.T) {
	svc, store := setupService(t)
	ctx := as("alice")

	once := mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Once", DueDate: "2024-01-10"})
	daily := mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Daily", DueDate: "2024-01-01", Recurrence: constants.RecurrenceDaily})

	if _, err := svc.ToggleCompletion(ctx, once.ID, "2024-01-10"); err != nil {
		t.Fatalf("toggle once: %v", err)
	}
	if _, err := svc.ToggleCompletion(ctx, daily.ID, "2024-01-09"); err != nil {
		t.Fatalf("toggle daily: %v", err)
	}
	// A stale task-level flag on a recurring task must be ignored.
	if err := store.SetTaskCompletion(context.Background(), "alice", daily.ID, true, &now); err != nil {
		t.Fatalf("SetTaskCompletion() error: %v", err)
	}

	byTitle := func(instances []models.TaskInstance) map[string]models.TaskInstance {
		m := map[string]models.TaskInstance{}
		for _, inst := range instances {
			m[inst.Title] = inst
		}
		return m
	}

	jan10, _ := svc.ListForDate(ctx, "2024-01-10", Filter{})
	got := byTitle(jan10)
	if !got["Once"].Completed || got["Once"].CompletedAt == nil {
		t.Errorf("non-recurring completion not reported: %+v", got["Once"])
	}
	if got["Daily"].Completed || got["Daily"].CompletedAt != nil {
		t.Errorf("daily instance on 2024-01-10 should be incomplete: %+v", got["Daily"])
	}

	jan9, _ := svc.ListForDate(ctx, "2024-01-09", Filter{})
	got = byTitle(jan9)
	if !got["Daily"].Completed || got["Daily"].CompletedAt == nil {
		t.Errorf("daily instance on 2024-01-09 should be complete: %+v", got["Daily"])
	}
	if _, ok := got["Once"]; ok {
		t.Error("non-recurring task visible on a different date")
	}
}

func TestQueriesUnauthenticated(t *testing.T) {
	svc, _ := setupService(t)
	mustCreateTask(t, svc, as("alice"), models.TaskInput{Title: "Private", DueDate: "2024-01-10"})

	ctx := context.Background()
	got, err := svc.ListForDate(ctx, "2024-01-10", Filter{})
	if err != nil || len(got) != 0 {
		t.Errorf("ListForDate() unauthenticated = (%v, %v), want empty", got, err)
	}

	week, err := svc.ListForRange(ctx, "2024-01-08", "2024-01-14", Filter{})
	if err != nil {
		t.Fatalf("ListForRange() unauthenticated error: %v", err)
	}
	for date, instances := range week {
		if len(instances) != 0 {
			t.Errorf("ListForRange() unauthenticated returned tasks on %s", date)
		}
	}

	other, _ := svc.ListForDate(as("bob"), "2024-01-10", Filter{})
	if len(other) != 0 {
		t.Errorf("another owner can see %d tasks", len(other))
	}
}

func TestListForDateInvalidDate(t *testing.T) {
	svc, _ := setupService(t)
	_, err := svc.ListForDate(as("alice"), "2024-13-01", Filter{})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("ListForDate() error = %v, want ErrInvalidInput", err)
	}

	got, err := svc.ListForDate(context.Background(), "2024-13-01", Filter{})
	if err != nil || len(got) != 0 {
		t.Errorf("ListForDate() unauthenticated with bad date = (%v, %v), want empty", got, err)
	}

	byDay, err := svc.ListForRange(context.Background(), "2024-13-01", "2024-13-05", Filter{})
	if err != nil || len(byDay) != 0 {
		t.Errorf("ListForRange() unauthenticated with bad dates = (%v, %v), want empty", byDay, err)
	}
}

func TestListForRange(t *testing.T) {
	svc, _ := setupService(t)
	ctx := as("alice")

	biweekly := mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Payroll", DueDate: "2024-01-01", Recurrence: constants.RecurrenceBiweekly})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Rent", DueDate: "2023-12-03", Recurrence: constants.RecurrenceMonthly})
	if _, err := svc.ToggleCompletion(ctx, biweekly.ID, "2024-01-15"); err != nil {
		t.Fatalf("ToggleCompletion() error: %v", err)
	}

	got, err := svc.ListForRange(ctx, "2024-01-01", "2024-01-31", Filter{})
	if err != nil {
		t.Fatalf("ListForRange() error: %v", err)
	}
	if len(got) != 31 {
		t.Fatalf("ListForRange() has %d dates, want 31", len(got))
	}

	due := map[string][]string{}
	for date, instances := range got {
		for _, inst := range instances {
			due[inst.Title] = append(due[inst.Title], date)
			if inst.Date != date {
				t.Errorf("instance under %s carries Date %s", date, inst.Date)
			}
			wantDone := inst.Title == "Payroll" && date == "2024-01-15"
			if inst.Completed != wantDone {
				t.Errorf("%s on %s Completed = %v, want %v", inst.Title, date, inst.Completed, wantDone)
			}
		}
	}

	if n := len(due["Payroll"]); n != 3 {
		t.Errorf("biweekly task due %d times in January, want 3 (%v)", n, due["Payroll"])
	}
	if !equalStrings(due["Rent"], []string{"2024-01-03"}) {
		t.Errorf("monthly task due on %v, want [2024-01-03]", due["Rent"])
	}
}

func TestListForRangeBounds(t *testing.T) {
	svc, _ := setupService(t)
	ctx := as("alice")

	got, err := svc.ListForRange(ctx, "2024-01-10", "2024-01-09", Filter{})
	if err != nil || len(got) != 0 {
		t.Errorf("reversed range = (%v, %v), want empty map", got, err)
	}

	_, err = svc.ListForRange(ctx, "2020-01-01", "2024-01-01", Filter{})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("oversized range error = %v, want ErrInvalidInput", err)
	}
}

func TestTodayAndWeek(t *testing.T) {
	svc, _ := setupService(t)
	ctx := as("alice")

	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Today", DueDate: "2024-01-10"})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Sunday", DueDate: "2024-01-14"})
	mustCreateTask(t, svc, ctx, models.TaskInput{Title: "Next Monday", DueDate: "2024-01-15"})

	today, err := svc.Today(ctx, Filter{})
	if err != nil {
		t.Fatalf("Today() error: %v", err)
	}
	if !equalStrings(titles(today), []string{"Today"}) {
		t.Errorf("Today() = %v", titles(today))
	}

	week, err := svc.Week(ctx, "2024-01-10", Filter{})
	if err != nil {
		t.Fatalf("Week() error: %v", err)
	}
	if _, ok := week["2024-01-08"]; !ok {
		t.Error("Week() does not start on Monday 2024-01-08")
	}
	if len(week) != 7 {
		t.Errorf("Week() has %d days, want 7", len(week))
	}
	if !equalStrings(titles(week["2024-01-14"]), []string{"Sunday"}) {
		t.Errorf("Sunday = %v", titles(week["2024-01-14"]))
	}
	if _, ok := week["2024-01-15"]; ok {
		t.Error("Week() includes the following Monday")
	}
}

func TestStaticAuthProvider(t *testing.T) {
	svc, store := setupService(t)
	mustCreateTask(t, svc, as("alice"), models.TaskInput{Title: "Mine", DueDate: "2024-01-10"})

	static := New(store, auth.Static("alice"), clock.Fixed(now))
	got, err := static.Today(context.Background(), Filter{})
	if err != nil || len(got) != 1 {
		t.Errorf("Today() with static owner = (%v, %v), want one task", titles(got), err)
	}
}
