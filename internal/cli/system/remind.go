package system

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/scheduler"
)

// RemindCmd prints the day's open tasks every day at a fixed time.
type RemindCmd struct {
	At       string `help:"Time of day to send the digest (HH:MM). Defaults to remind_at from the config."`
	Category string `short:"c" help:"Only remind about tasks in this category (name or ID)."`
	Once     bool   `help:"Print today's digest immediately and exit."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	if c.Once {
		return c.digest(ctx)
	}

	at := c.At
	if at == "" && ctx.Config != nil {
		at = ctx.Config.RemindAt
	}

	sched := scheduler.New(ctx.Location)
	if err := sched.Daily(at, func() {
		if err := c.digest(ctx); err != nil {
			logger.Error("Reminder digest failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid reminder time: %w", err)
	}

	next, err := scheduler.NextRun(at, ctx.Service.Now(), ctx.Location)
	if err != nil {
		return err
	}
	ctx.Printf("Sending the daily digest at %s (next: %s). Press Ctrl+C to stop.\n",
		at, next.Format("2006-01-02 15:04 MST"))

	runCtx, stop := signal.NotifyContext(ctx.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return sched.Run(runCtx)
}

func (c *RemindCmd) digest(ctx *cli.Context) error {
	filter, err := ctx.CategoryFilter(c.Category)
	if err != nil {
		return err
	}
	instances, err := ctx.Service.Today(ctx.Context(), filter)
	if err != nil {
		return err
	}
	cats, err := ctx.CategoryIndex()
	if err != nil {
		return err
	}

	date := ctx.Service.CurrentDate()
	ctx.Printf("%s", cli.FormatDigest(date, instances, cats))
	logger.Info("Sent reminder digest", "date", date, "tasks", len(instances))
	return nil
}
