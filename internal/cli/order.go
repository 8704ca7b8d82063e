package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
)

func (c *CLI) orderCommand() *cobra.Command {
	var (
		direction string
		selected  []string
	)

	cmd := &cobra.Command{
		Use:   "order [file]",
		Short: "Print the drawing order of the holes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if direction != "" {
				cfg.Direction = direction
			}
			dir, err := ordering.ParseDirection(cfg.Direction)
			if err != nil {
				return err
			}

			holes, err := loadHoles(c.context(cmd.Context()), args[0], selected)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, StyleTitle.Render(dir.Label()))
			fmt.Fprintln(stdout, orderTable(ordering.Sort(holes, dir), dir))
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "", "drawing direction: north-south, south-north, west-east, east-west")
	cmd.Flags().StringSliceVarP(&selected, "select", "s", nil, "hole names to order (comma-separated, default all)")
	_ = cmd.RegisterFlagCompletionFunc("direction", completeDirections)

	return cmd
}

// orderTable renders sorted holes with the sort attribute highlighted.
func orderTable(holes []drill.Hole, dir ordering.Direction) string {
	keyCol := 3
	if dir.Attribute() == drill.AttrX {
		keyCol = 2
	}

	rows := make([][]string, len(holes))
	for i, h := range holes {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			h.Name,
			formatCoord(h.X),
			formatCoord(h.Y),
			strconv.Itoa(len(h.Records)),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Hole", drill.AttrX, drill.AttrY, "Layers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == -1:
				return styleHeader.Padding(0, 1)
			case col == keyCol:
				return base.Foreground(colorCyan)
			case col == 0:
				return base.Foreground(colorDim)
			}
			return base
		}).
		String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
