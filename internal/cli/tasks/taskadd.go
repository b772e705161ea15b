package tasks

import (
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
)

type TaskAddCmd struct {
	Title      string `arg:"" help:"Task title."`
	Date       string `short:"d" help:"Due date (YYYY-MM-DD, today, tomorrow or yesterday)." default:"today"`
	Time       string `short:"t" help:"Due time (HH:MM). Omit for an all-day task."`
	Recurrence string `short:"r" help:"Recurrence (none|daily|weekly|biweekly|monthly|quarterly)." default:"none"`
	Category   string `short:"c" help:"Category name or ID."`
	Emoji      string `short:"e" help:"Emoji shown before the title."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Time != "" {
		if err := models.ValidateTime(c.Time); err != nil {
			return err
		}
	}
	_, err := cli.ParseRecurrence(c.Recurrence)
	return err
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date, ctx.Service.CurrentDate())
	if err != nil {
		return err
	}
	recurrence, err := cli.ParseRecurrence(c.Recurrence)
	if err != nil {
		return err
	}

	in := models.TaskInput{
		Title:      c.Title,
		Emoji:      c.Emoji,
		DueDate:    date,
		Recurrence: recurrence,
	}
	if c.Time != "" {
		dueTime := c.Time
		in.DueTime = &dueTime
	}
	if c.Category != "" {
		cat, err := ctx.Service.FindCategory(ctx.Context(), c.Category)
		if err != nil {
			return err
		}
		in.CategoryID = &cat.ID
	}

	task, err := ctx.Service.CreateTask(ctx.Context(), in)
	if err != nil {
		return err
	}

	ctx.Printf("Added task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
