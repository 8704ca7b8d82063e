package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/geocore/geocore/pkg/buildinfo"
	"github.com/geocore/geocore/pkg/dialog"
	"github.com/geocore/geocore/pkg/drill/resolver"
	"github.com/geocore/geocore/pkg/errors"
	"github.com/geocore/geocore/pkg/notify"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
	"github.com/geocore/geocore/pkg/render/profile/scale"
	"github.com/geocore/geocore/pkg/render/profile/sink"
)

type viewOpts struct {
	selected []string
	fixed    bool
}

func (c *CLI) viewCommand() *cobra.Command {
	var opts viewOpts

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a drilling profile in the terminal",
		Long: `Open an interactive profile of the holes in a JSON or XLSX file.

Keys:
  1-4 / n s w e   draw north-south, south-north, west-east, east-west
  + / - / wheel   zoom the view
  x               set the x/y scale factors
  o               export (tab switches between raster and vector)
  r               redraw
  q               quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if opts.fixed {
				cfg.DirectionSelection = false
			}
			ctx := c.context(cmd.Context())

			holes, err := loadHoles(ctx, args[0], opts.selected)
			if err != nil {
				return err
			}

			// The viewer owns the terminal, so notifications go to the
			// status line instead of the logger.
			status := &statusLine{}
			d := dialog.New(dialog.Holes(holes), resolver.New(status),
				dialog.WithConfig(dialogConfig(cfg)),
				dialog.WithNotifier(status),
			)

			// Draw failures land in the status line.
			_ = d.Open(ctx)

			m := newViewModel(ctx, d, status, cfg.FilterValue())
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&opts.selected, "select", "s", nil, "hole names to draw (comma-separated, default all)")
	cmd.Flags().BoolVar(&opts.fixed, "fixed-order", false, "draw in selection order and disable direction keys")

	return cmd
}

// =============================================================================
// Status line
// =============================================================================

// statusLine keeps the latest notification for the viewer footer.
type statusLine struct {
	msg notify.Message
	set bool
}

func (s *statusLine) Notify(title, message string, level notify.Level) {
	s.msg = notify.Message{Title: title, Text: message, Level: level}
	s.set = true
}

func (s *statusLine) clear() { s.set = false }

func (s *statusLine) String() string {
	if !s.set {
		return ""
	}
	style := StyleDim
	switch s.msg.Level {
	case notify.Warning:
		style = StyleWarning
	case notify.Critical:
		style = StyleError
	}
	return style.Render(s.msg.Title + ": " + s.msg.Text)
}

// =============================================================================
// Viewer model
// =============================================================================

type viewMode int

const (
	modeBrowse viewMode = iota
	modeScale
	modeExport
)

var directionKeys = map[string]ordering.Direction{
	"1": ordering.NorthSouth, "n": ordering.NorthSouth,
	"2": ordering.SouthNorth, "s": ordering.SouthNorth,
	"3": ordering.WestEast, "w": ordering.WestEast,
	"4": ordering.EastWest, "e": ordering.EastWest,
}

// viewModel is the bubbletea model of the interactive profile dialog.
type viewModel struct {
	ctx    context.Context
	dialog *dialog.Dialog
	status *statusLine
	input  textinput.Model
	mode   viewMode
	filter sink.Filter
	width  int
	height int
}

func newViewModel(ctx context.Context, d *dialog.Dialog, status *statusLine, filter sink.Filter) viewModel {
	in := textinput.New()
	in.CharLimit = 256
	return viewModel{
		ctx:    ctx,
		dialog: d,
		status: status,
		input:  in,
		filter: filter,
		width:  80,
		height: 24,
	}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.dialog.Wheel(m.ctx, 1)
		case tea.MouseButtonWheelDown:
			m.dialog.Wheel(m.ctx, -1)
		}
		return m, nil
	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updatePrompt(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m viewModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if dir, ok := directionKeys[key]; ok {
		if !m.dialog.DirectionSelection() {
			m.status.Notify("Direction", "direction selection is disabled", notify.Info)
			return m, nil
		}
		m.status.clear()
		_ = m.dialog.DrawProfiles(m.ctx, dir)
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "+", "=":
		m.dialog.Wheel(m.ctx, 1)
	case "-", "_":
		m.dialog.Wheel(m.ctx, -1)
	case "r":
		m.status.clear()
		_ = m.dialog.Redraw(m.ctx)
	case "x":
		x, y := m.dialog.Scale()
		return m.prompt(modeScale, "scale x y: ", fmt.Sprintf("%g %g", x, y))
	case "o":
		return m.prompt(modeExport, "export to: ", "")
	}
	return m, nil
}

func (m viewModel) prompt(mode viewMode, label, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Prompt = label
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m viewModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.mode == modeScale {
			_ = m.dialog.ApplyScale(m.ctx, scale.Reject())
		}
		return m.closePrompt(), nil
	case "tab":
		if m.mode == modeExport {
			m.filter = toggleFilter(m.filter)
		}
		return m, nil
	case "enter":
		value := m.input.Value()
		mode := m.mode
		m = m.closePrompt()
		m.submit(mode, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m viewModel) closePrompt() viewModel {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.Reset()
	return m
}

func (m viewModel) submit(mode viewMode, value string) {
	m.status.clear()
	switch mode {
	case modeScale:
		r, err := parseScaleInput(value)
		if err != nil {
			m.status.Notify("Scale", errors.UserMessage(err), notify.Warning)
			return
		}
		_ = m.dialog.ApplyScale(m.ctx, r)
	case modeExport:
		written, err := m.dialog.Export(m.ctx, value, m.filter)
		if err == nil && written != "" {
			m.status.Notify("Export", "exported to "+written, notify.Info)
		}
	}
}

func toggleFilter(f sink.Filter) sink.Filter {
	if f == sink.FilterVector {
		return sink.FilterRaster
	}
	return sink.FilterVector
}

// parseScaleInput reads "x y", "x,y" or a single factor for both axes.
// An empty answer rejects the prompt.
func parseScaleInput(s string) (scale.Result, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return scale.Reject(), nil
	}
	if len(fields) > 2 {
		return scale.Reject(), errors.New(errors.ErrCodeInvalidScale, "expected one or two scale factors")
	}
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return scale.Reject(), errors.Wrap(errors.ErrCodeInvalidScale, err, "invalid scale factor %q", f)
		}
		vals[i] = v
	}
	if len(vals) == 1 {
		return scale.Accept(vals[0], vals[0]), nil
	}
	return scale.Accept(vals[0], vals[1]), nil
}

// =============================================================================
// Rendering
// =============================================================================

var (
	viewFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	viewHelp       = "1-4 direction  +/- zoom  x scale  o export  r redraw  q quit"
)

func (m viewModel) View() string {
	var b strings.Builder

	x, y := m.dialog.Scale()
	header := StyleTitle.Render(buildinfo.Short()) + "  " +
		StyleHighlight.Render(m.dialog.Direction().Label()) + "  " +
		StyleDim.Render(fmt.Sprintf("%d holes · scale %gx%g · zoom %.2f",
			m.dialog.Collection().Len(), x, y, m.dialog.Scene().View().Scale()))
	b.WriteString(header)
	b.WriteString("\n")

	// Header, footer and the frame border take six rows.
	w, h := max(m.width-2, 1), max(m.height-6, 1)
	b.WriteString(viewFrameStyle.Render(renderPreview(m.dialog.Scene(), w, h)))
	b.WriteString("\n")

	switch m.mode {
	case modeBrowse:
		b.WriteString(StyleDim.Render(viewHelp))
	case modeExport:
		b.WriteString(m.input.View() + "  " + StyleDim.Render("["+m.filter.String()+", tab to switch]"))
	default:
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(m.status.String())

	return b.String()
}
