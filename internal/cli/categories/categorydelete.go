package categories

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/cadence/internal/cli"
)

type CategoryDeleteCmd struct {
	Ref string `arg:"" name:"category" help:"Category name or ID."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	cat, err := ctx.Service.FindCategory(ctx.Context(), c.Ref)
	if err != nil {
		return fmt.Errorf("failed to find category: %w", err)
	}

	if !c.Yes {
		confirmed := false
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Delete category %q?", cat.Name)).
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

	if err := ctx.Service.DeleteCategory(ctx.Context(), cat.ID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", cat.Name, err)
	}
	ctx.Printf("Deleted category: %s\n", cat.Name)
	return nil
}
