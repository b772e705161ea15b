package tasks

import (
	"github.com/julianstephens/cadence/internal/cli"
)

type TaskListCmd struct {
	Category  string `short:"c" help:"Only list tasks in this category (name or ID)."`
	Recurring bool   `help:"Show only recurring tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	filter, err := ctx.CategoryFilter(c.Category)
	if err != nil {
		return err
	}
	tasks, err := ctx.Service.ListTasks(ctx.Context())
	if err != nil {
		return err
	}
	cats, err := ctx.CategoryIndex()
	if err != nil {
		return err
	}

	shown := 0
	for _, task := range tasks {
		if filter.CategoryID != "" && !task.HasCategory(filter.CategoryID) {
			continue
		}
		if c.Recurring && !task.Recurrence.IsRecurring() {
			continue
		}
		if shown == 0 {
			ctx.Println("Tasks:")
		}
		shown++
		line := cli.FormatInstance(cli.Instance(task), cats)
		ctx.Printf("  %s  %s\n", task.DueDate, line)
	}

	if shown == 0 {
		ctx.Println("No tasks found")
	}
	return nil
}
