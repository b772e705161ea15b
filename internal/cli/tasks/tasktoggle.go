package tasks

import (
	"github.com/julianstephens/cadence/internal/cli"
)

type TaskToggleCmd struct {
	ID   string `arg:"" help:"Task ID or unique ID prefix."`
	Date string `short:"d" help:"Instance date for recurring tasks (YYYY-MM-DD, today, tomorrow or yesterday)." default:"today"`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return err
	}
	date, err := cli.ResolveDate(c.Date, ctx.Service.CurrentDate())
	if err != nil {
		return err
	}

	inst, err := ctx.Service.ToggleCompletion(ctx.Context(), task.ID, date)
	if err != nil {
		return err
	}

	state := "incomplete"
	if inst.Completed {
		state = "complete"
	}
	ctx.Printf("Marked %s %s for %s\n", inst.Title, state, inst.Date)
	return nil
}
