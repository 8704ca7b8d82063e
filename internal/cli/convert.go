package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geocore/geocore/pkg/drill/source"
)

func (c *CLI) convertCommand() *cobra.Command {
	var (
		output   string
		selected []string
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert drill holes from XLSX (or JSON) to JSON",
		Long: `Convert a drill-hole workbook into the JSON input format.

The workbook needs a "holes" sheet (name, xcoord, ycoord) and a "layers"
sheet (hole, from, to, label, color, texture).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := c.context(cmd.Context())
			holes, err := loadHoles(ctx, args[0], selected)
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".json"
			}
			if filepath.Clean(output) == filepath.Clean(args[0]) {
				return fmt.Errorf("output %s would overwrite the input", output)
			}

			prog := newProgress(c.Logger)
			if err := source.ExportJSON(holes, output); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Converted %d holes", len(holes)))
			printSuccess("Converted %s", StyleNumber.Render(fmt.Sprintf("%d holes", len(holes))))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with .json)")
	cmd.Flags().StringSliceVarP(&selected, "select", "s", nil, "hole names to keep (comma-separated, default all)")

	return cmd
}
