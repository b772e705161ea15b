package system

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/cadence/internal/cli"
)

// ExportCmd writes the owner's categories, tasks and completions as YAML.
type ExportCmd struct {
	Output string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	snap, err := ctx.Service.Export(ctx.Context())
	if err != nil {
		return err
	}

	var w io.Writer = ctx.Writer()
	if c.Output != "" {
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	if c.Output != "" {
		ctx.Printf("Exported %d tasks and %d categories to %s\n", len(snap.Tasks), len(snap.Categories), c.Output)
	}
	return nil
}
