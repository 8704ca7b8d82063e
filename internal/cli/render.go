package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geocore/geocore/pkg/config"
	"github.com/geocore/geocore/pkg/dialog"
	"github.com/geocore/geocore/pkg/drill/resolver"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
	"github.com/geocore/geocore/pkg/render/profile/scale"
	"github.com/geocore/geocore/pkg/render/profile/sink"
)

// renderOpts holds the command-line flags for the render command.
// Zero values mean "use the config file".
type renderOpts struct {
	output    string   // destination file; suffix picks the format
	direction string   // north-south, south-north, west-east, east-west
	filter    string   // raster or vector, used when output has no suffix
	scaleX    float64  // horizontal scale factor
	scaleY    float64  // vertical scale factor
	selected  []string // hole names to draw, in selection order
	captions  string   // "on", "off" or "" for the config value
	quiet     bool     // demote warnings to dimmed detail lines
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a drilling profile and export it",
		Long: `Draw the holes of a JSON or XLSX file as a stratigraphic profile and export it.

The output suffix picks the format: .svg writes vector graphics, anything
else writes a raster image (.jpg/.jpeg as JPEG, otherwise PNG). Without a
suffix, --filter decides between .png and .svg.`,
		Example: `  geocore render holes.json -o section.svg
  geocore render holes.xlsx --direction west-east --scale-y 2 -o section
  geocore render holes.json --select B3,B1,B7 --filter vector -o b-line`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runRender(c.context(cmd.Context()), args[0], cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the filter suffix)")
	cmd.Flags().StringVarP(&opts.direction, "direction", "d", "", "drawing direction: north-south, south-north, west-east, east-west")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "file type when --output has no suffix: raster (default), vector")
	cmd.Flags().Float64Var(&opts.scaleX, "scale-x", 0, "horizontal scale factor")
	cmd.Flags().Float64Var(&opts.scaleY, "scale-y", 0, "vertical scale factor")
	cmd.Flags().StringSliceVarP(&opts.selected, "select", "s", nil, "hole names to draw (comma-separated, default all)")
	cmd.Flags().StringVar(&opts.captions, "captions", "", "hole name captions: on, off")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "demote warnings to dimmed detail lines instead of highlighted warnings")

	_ = cmd.RegisterFlagCompletionFunc("direction", completeDirections)
	_ = cmd.RegisterFlagCompletionFunc("filter", cobra.FixedCompletions([]string{"raster", "vector"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func completeDirections(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, d := range ordering.Directions() {
		out = append(out, d.String()+"\t"+d.Label())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// applyFlags overlays command-line flags on the config file settings.
func applyFlags(cfg config.Options, opts renderOpts) (config.Options, error) {
	if opts.direction != "" {
		cfg.Direction = opts.direction
	}
	if opts.filter != "" {
		cfg.Export.Filter = opts.filter
	}
	switch strings.ToLower(opts.captions) {
	case "":
	case "on", "true", "yes":
		cfg.Scene.Captions = true
	case "off", "false", "no":
		cfg.Scene.Captions = false
	default:
		return cfg, fmt.Errorf("invalid captions value: %q (must be on or off)", opts.captions)
	}
	return cfg, cfg.Validate()
}

// scaleResult turns the scale flags into a scale prompt result. Flags left
// at zero keep the unscaled factor of 1.
func scaleResult(opts renderOpts) scale.Result {
	if opts.scaleX == 0 && opts.scaleY == 0 {
		return scale.Reject()
	}
	x, y := opts.scaleX, opts.scaleY
	if x == 0 {
		x = 1
	}
	if y == 0 {
		y = 1
	}
	return scale.Accept(x, y)
}

// defaultOutput derives an output name from the input file.
func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

func dialogConfig(cfg config.Options) dialog.Config {
	return dialog.Config{
		DirectionSelection: cfg.DirectionSelection,
		Layout:             cfg.LayoutOptions(),
		Scene:              cfg.SceneOptions(),
		Export:             cfg.ExportOptions(),
	}
}

func (c *CLI) runRender(ctx context.Context, input string, cfg config.Options, opts renderOpts) error {
	cfg, err := applyFlags(cfg, opts)
	if err != nil {
		return err
	}
	holes, err := loadHoles(ctx, input, opts.selected)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	sinks := multiNotifier{statusNotifier{quiet: opts.quiet}, logNotifier{logger: c.Logger}}
	d := dialog.New(dialog.Holes(holes), resolver.New(sinks),
		dialog.WithConfig(dialogConfig(cfg)),
		dialog.WithNotifier(sinks),
		dialog.WithLogger(c.Logger),
	)

	if err := d.DrawProfiles(ctx, cfg.DirectionValue()); err != nil {
		return err
	}
	if err := d.ApplyScale(ctx, scaleResult(opts)); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = defaultOutput(input)
	}
	spin := startSpinner(ctx, "Exporting "+output)
	written, err := d.Export(ctx, output, cfg.FilterValue())
	spin.Stop()
	if spin.Cancelled() {
		return ctx.Err()
	}
	if err != nil {
		return err
	}
	if written == "" {
		return sink.ErrNoDestination
	}

	pac := d.Collection()
	prog.done(fmt.Sprintf("Rendered %d holes", pac.Len()), "direction", d.Direction().String())
	printSuccess("Rendered %s", StyleNumber.Render(fmt.Sprintf("%d holes", pac.Len())))
	printDetail("%s · %d connectors · %s", d.Direction().Label(), len(pac.Connectors), sink.FormatOf(written))
	printFile(written)

	return nil
}
