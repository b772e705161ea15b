package tasks

import (
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/constants"
)

type TaskShowCmd struct {
	ID string `arg:"" help:"Task ID or unique ID prefix."`
}

func (c *TaskShowCmd) Run(ctx *cli.Context) error {
	task, err := ctx.FindTask(c.ID)
	if err != nil {
		return err
	}

	ctx.Printf("ID:         %s\n", task.ID)
	ctx.Printf("Title:      %s\n", task.Title)
	if task.Emoji != "" {
		ctx.Printf("Emoji:      %s\n", task.Emoji)
	}
	if task.CategoryID != nil {
		cats, err := ctx.CategoryIndex()
		if err != nil {
			return err
		}
		if cat, ok := cats[*task.CategoryID]; ok {
			ctx.Printf("Category:   %s\n", cli.CategoryLabel(cat))
		}
	}
	ctx.Printf("Due date:   %s\n", task.DueDate)
	if task.DueTime != nil {
		ctx.Printf("Due time:   %s\n", *task.DueTime)
	} else {
		ctx.Println("Due time:   all day")
	}
	ctx.Printf("Recurrence: %s\n", task.Recurrence)
	if !task.Recurrence.IsRecurring() {
		if task.Completed && task.CompletedAt != nil {
			ctx.Printf("Completed:  %s\n", task.CompletedAt.In(ctx.Location).Format("2006-01-02 15:04"))
		} else {
			ctx.Println("Completed:  no")
		}
	}
	ctx.Printf("Created:    %s\n", task.CreatedAt.In(ctx.Location).Format(constants.DateFormat))
	return nil
}
