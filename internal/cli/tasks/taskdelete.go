package tasks

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cadence/internal/cli"
)

type TaskDeleteCmd struct {
	ID  string `arg:"" help:"Task ID or unique ID prefix."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find task with ID %s: %w", c.ID, err)
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", task.Title)).
			Description("Its completion history is deleted too.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			ctx.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Service.DeleteTask(ctx.Context(), task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	ctx.Printf("Deleted task: %s (ID: %s)\n", task.Title, task.ID)
	return nil
}
