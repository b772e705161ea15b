package tasks

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
)

type TaskEditCmd struct {
	ID         string  `arg:"" help:"Task ID or unique ID prefix."`
	Title      *string `help:"New title."`
	Emoji      *string `short:"e" help:"New emoji."`
	Date       *string `short:"d" help:"New due date (YYYY-MM-DD, today, tomorrow or yesterday)."`
	Time       *string `short:"t" help:"New due time (HH:MM)."`
	AllDay     bool    `help:"Clear the due time, making the task all-day."`
	Recurrence *string `short:"r" help:"New recurrence (none|daily|weekly|biweekly|monthly|quarterly)."`
	Category   *string `short:"c" help:"New category name or ID."`
	NoCategory bool    `help:"Remove the task's category."`
}

func (c *TaskEditCmd) Validate() error {
	if c.AllDay && c.Time != nil {
		return fmt.Errorf("--time and --all-day cannot be used together")
	}
	if c.NoCategory && c.Category != nil {
		return fmt.Errorf("--category and --no-category cannot be used together")
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task: %w", err)
	}

	var patch models.TaskPatch
	if c.Title != nil {
		patch.Title = models.Some(*c.Title)
	}
	if c.Emoji != nil {
		patch.Emoji = models.Some(*c.Emoji)
	}
	if c.Date != nil {
		date, err := cli.ResolveDate(*c.Date, ctx.Service.CurrentDate())
		if err != nil {
			return err
		}
		patch.DueDate = models.Some(date)
	}
	if c.Time != nil {
		dueTime := *c.Time
		patch.DueTime = models.Some(&dueTime)
	}
	if c.AllDay {
		patch.DueTime = models.Clear[string]()
	}
	if c.Recurrence != nil {
		recurrence, err := cli.ParseRecurrence(*c.Recurrence)
		if err != nil {
			return err
		}
		patch.Recurrence = models.Some(recurrence)
	}
	if c.Category != nil {
		cat, err := ctx.Service.FindCategory(ctx.Context(), *c.Category)
		if err != nil {
			return err
		}
		patch.CategoryID = models.Some(&cat.ID)
	}
	if c.NoCategory {
		patch.CategoryID = models.Clear[string]()
	}

	if patch.IsEmpty() {
		ctx.Println("Nothing to update.")
		return nil
	}

	updated, err := ctx.Service.UpdateTask(ctx.Context(), task.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	ctx.Printf("Task updated: %s\n", updated.Title)
	return nil
}
