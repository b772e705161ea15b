package categories

import (
	"github.com/julianstephens/cadence/internal/cli"
)

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	cats, err := ctx.Service.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		ctx.Println("No categories found. Run 'cadence category defaults' to create the starter set.")
		return nil
	}

	ctx.Println("Categories:")
	for _, cat := range cats {
		ctx.Printf("  %-30s %s  %s\n", cli.CategoryLabel(cat), cat.Color, cli.ShortID(cat.ID))
	}
	return nil
}

// CategoryDefaultsCmd seeds the starter categories for an owner who has none.
type CategoryDefaultsCmd struct{}

func (c *CategoryDefaultsCmd) Run(ctx *cli.Context) error {
	before, err := ctx.Service.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	cats, err := ctx.Service.InitializeDefaultCategories(ctx.Context())
	if err != nil {
		return err
	}
	if len(before) > 0 {
		ctx.Printf("Categories already exist (%d); nothing seeded.\n", len(cats))
		return nil
	}
	ctx.Printf("Created %d default categories.\n", len(cats))
	return nil
}
