package categories

import (
	"fmt"

	"github.com/julianstephens/cadence/internal/cli"
	"github.com/julianstephens/cadence/internal/models"
)

type CategoryEditCmd struct {
	Ref   string  `arg:"" name:"category" help:"Category name or ID."`
	Name  *string `short:"n" help:"New name."`
	Emoji *string `short:"e" help:"New emoji."`
	Color *string `short:"c" help:"New colour as #RRGGBB."`
}

func (c *CategoryEditCmd) Validate() error {
	if c.Color == nil {
		return nil
	}
	return cli.ValidateColor(*c.Color)
}

func (c *CategoryEditCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Service.FindCategory(ctx.Context(), c.Ref)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}

	var patch models.CategoryPatch
	if c.Name != nil {
		patch.Name = models.Some(*c.Name)
	}
	if c.Emoji != nil {
		patch.Emoji = models.Some(*c.Emoji)
	}
	if c.Color != nil {
		patch.Color = models.Some(*c.Color)
	}
	if patch.IsEmpty() {
		ctx.Println("Nothing to update.")
		return nil
	}

	updated, err := ctx.Service.UpdateCategory(ctx.Context(), cat.ID, patch)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	ctx.Printf("Category updated: %s\n", cli.CategoryLabel(updated))
	return nil
}
