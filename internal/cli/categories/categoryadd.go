package categories

import (
	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
)

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name (unique)."`
	Emoji string `short:"e" help:"Emoji shown with the category."`
	Color string `short:"c" help:"Display colour as #RRGGBB."`
}

func (c *CategoryAddCmd) Validate() error {
	if c.Color == "" {
		return nil
	}
	return cli.ValidateColor(c.Color)
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Service.CreateCategory(ctx.Context(), models.CategoryInput{
		Name:  c.Name,
		Emoji: c.Emoji,
		Color: c.Color,
	})
	if err != nil {
		return err
	}
	ctx.Printf("Added category: %s (ID: %s)\n", cli.CategoryLabel(cat), cat.ID)
	return nil
}
