// Package views holds the read-only agenda commands.
package views

import (
	"github.com/julianstephens/cadence/internal/cli"
)

type TodayCmd struct {
	Category string `short:"c" help:"Only show tasks in this category (name or ID)."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
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
	cli.RenderDay(ctx.Writer(), ctx.Service.CurrentDate(), instances, cats)
	return nil
}

type DayCmd struct {
	Date     string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, today, tomorrow or yesterday)." default:"today"`
	Category string `short:"c" help:"Only show tasks in this category (name or ID)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date, ctx.Service.CurrentDate())
	if err != nil {
		return err
	}
	filter, err := ctx.CategoryFilter(c.Category)
	if err != nil {
		return err
	}
	instances, err := ctx.Service.ListForDate(ctx.Context(), date, filter)
	if err != nil {
		return err
	}
	cats, err := ctx.CategoryIndex()
	if err != nil {
		return err
	}
	cli.RenderDay(ctx.Writer(), date, instances, cats)
	return nil
}

// WeekCmd shows the Monday to Sunday week containing Date.
type WeekCmd struct {
	Date     string `arg:"" optional:"" help:"Any date in the week to show (YYYY-MM-DD, today, tomorrow or yesterday)." default:"today"`
	Category string `short:"c" help:"Only show tasks in this category (name or ID)."`
}

func (c *WeekCmd) Run(ctx *cli.Context) error {
	date, err := cli.ResolveDate(c.Date, ctx.Service.CurrentDate())
	if err != nil {
		return err
	}
	filter, err := ctx.CategoryFilter(c.Category)
	if err != nil {
		return err
	}
	days, err := ctx.Service.Week(ctx.Context(), date, filter)
	if err != nil {
		return err
	}
	cats, err := ctx.CategoryIndex()
	if err != nil {
		return err
	}
	cli.RenderRange(ctx.Writer(), days, cats)
	return nil
}

// RangeCmd shows every date from Start to End inclusive.
type RangeCmd struct {
	Start    string `arg:"" help:"First date (YYYY-MM-DD, today, tomorrow or yesterday)."`
	End      string `arg:"" help:"Last date (YYYY-MM-DD, today, tomorrow or yesterday)."`
	Category string `short:"c" help:"Only show tasks in this category (name or ID)."`
}

func (c *RangeCmd) Run(ctx *cli.Context) error {
	today := ctx.Service.CurrentDate()
	start, err := cli.ResolveDate(c.Start, today)
	if err != nil {
		return err
	}
	end, err := cli.ResolveDate(c.End, today)
	if err != nil {
		return err
	}
	filter, err := ctx.CategoryFilter(c.Category)
	if err != nil {
		return err
	}
	days, err := ctx.Service.ListForRange(ctx.Context(), start, end, filter)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		ctx.Printf("No dates between %s and %s.\n", start, end)
		return nil
	}
	cats, err := ctx.CategoryIndex()
	if err != nil {
		return err
	}
	cli.RenderRange(ctx.Writer(), days, cats)
	return nil
}
