// Package dialog implements the profile session behind every front end.
//
// A [Dialog] owns one scene and one scale model. It reads the current hole
// selection from its host, orders and assembles the holes, composes the
// scene and exports it. Every command runs synchronously and leaves the
// dialog usable: failures go to the notification sink and the returned
// error, never to a panic.
//
// The terminal viewer and the render command both drive a Dialog:
//
//	d := dialog.New(dialog.Holes(holes), resolver.New(sink),
//	    dialog.WithNotifier(sink),
//	    dialog.WithLogger(logger),
//	)
//	if err := d.Open(ctx); err != nil {
//	    return err
//	}
//	d.ApplyScale(ctx, scale.Accept(2, 1))
//	d.Export(ctx, "section", sink.FilterVector)
package dialog

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/errors"
	"github.com/geocore/geocore/pkg/notify"
	"github.com/geocore/geocore/pkg/observability"
	"github.com/geocore/geocore/pkg/render/profile/layout"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
	"github.com/geocore/geocore/pkg/render/profile/scale"
	"github.com/geocore/geocore/pkg/render/profile/scene"
	"github.com/geocore/geocore/pkg/render/profile/sink"
)

// Selection supplies the holes currently selected in the host.
type Selection interface {
	SelectedHoles() []drill.Hole
}

// Holes is a fixed selection.
type Holes []drill.Hole

// SelectedHoles returns the holes in selection order.
func (h Holes) SelectedHoles() []drill.Hole { return h }

// Config collects the settings of a dialog session.
type Config struct {
	// DirectionSelection enables the four direction commands. When it is
	// off, holes are drawn in selection order.
	DirectionSelection bool

	Layout layout.Options
	Scene  scene.Options
	Export sink.Options
}

// DefaultConfig returns a configuration with direction selection enabled.
func DefaultConfig() Config {
	return Config{
		DirectionSelection: true,
		Layout:             layout.DefaultOptions(),
		Scene:              scene.DefaultOptions(),
		Export:             sink.DefaultOptions(),
	}
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Dialog) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithNotifier sets the user-visible notification sink.
func WithNotifier(n notify.Sink) Option {
	return func(d *Dialog) {
		if n != nil {
			d.notify = n
		}
	}
}

// WithConfig replaces the default configuration.
func WithConfig(c Config) Option {
	return func(d *Dialog) { d.cfg = c }
}

// Dialog is one profile session.
type Dialog struct {
	selection Selection
	resolver  drill.Resolver
	notify    notify.Sink
	logger    *log.Logger
	cfg       Config

	scene *scene.Scene
	scale scale.Model
	dir   ordering.Direction
	holes []drill.Hole
	pac   layout.Collection
}

// New returns a dialog reading holes from sel and layers from r.
func New(sel Selection, r drill.Resolver, opts ...Option) *Dialog {
	d := &Dialog{
		selection: sel,
		resolver:  r,
		notify:    notify.Discard{},
		logger:    log.New(io.Discard),
		cfg:       DefaultConfig(),
		scene:     scene.New(),
		dir:       ordering.Default,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scene returns the composed scene.
func (d *Dialog) Scene() *scene.Scene { return d.scene }

// Direction returns the last drawn direction.
func (d *Dialog) Direction() ordering.Direction { return d.dir }

// DirectionSelection reports whether direction commands are enabled.
func (d *Dialog) DirectionSelection() bool { return d.cfg.DirectionSelection }

// Scale returns the effective scale factors.
func (d *Dialog) Scale() (x, y float64) { return d.scale.Factors() }

// Holes returns the holes of the last draw in drawing order.
func (d *Dialog) Holes() []drill.Hole { return slices.Clone(d.holes) }

// Collection returns the profiles and connectors of the last draw.
func (d *Dialog) Collection() layout.Collection { return d.pac }

// Open starts a fresh session: the scale is reset and the selection is
// drawn in the default direction.
func (d *Dialog) Open(ctx context.Context) error {
	d.scale.Reset()
	return d.DrawProfiles(ctx, ordering.Default)
}

// DrawProfiles orders the selection along dir and redraws the scene.
func (d *Dialog) DrawProfiles(ctx context.Context, dir ordering.Direction) error {
	if !dir.Valid() {
		return errors.New(errors.ErrCodeInvalidDirection, "invalid direction: %d", dir)
	}
	d.dir = dir
	return d.draw(ctx)
}

// Redraw draws the selection again in the last active direction.
func (d *Dialog) Redraw(ctx context.Context) error {
	return d.draw(ctx)
}

func (d *Dialog) draw(ctx context.Context) (err error) {
	selected := d.selection.SelectedHoles()
	holes := selected
	if d.cfg.DirectionSelection {
		holes = ordering.Sort(selected, d.dir)
	}

	start := time.Now()
	observability.Profile().OnDrawStart(ctx, d.dir.String(), len(holes))
	defer func() {
		observability.Profile().OnDrawComplete(ctx, d.dir.String(), d.pac.Len(), len(d.pac.Connectors), time.Since(start), err)
	}()

	pac, err := layout.Assembler{Resolver: d.resolver, Options: d.cfg.Layout}.Assemble(holes)
	if err != nil {
		d.scene.Clear()
		d.holes, d.pac = nil, layout.Collection{}
		d.notify.Notify("Error", fmt.Sprintf("Failed to draw profiles: %s", errors.UserMessage(err)), notify.Critical)
		d.logger.Error("draw failed", "direction", d.dir, "err", err)
		return err
	}

	d.holes, d.pac = holes, pac
	d.scene.Populate(pac, &d.scale, d.cfg.Scene)

	x, y := d.scale.Factors()
	d.logger.Debug("drew profiles",
		"direction", d.dir,
		"holes", len(holes),
		"connectors", len(pac.Connectors),
		"scale", fmt.Sprintf("%gx%g", x, y),
		"elapsed", time.Since(start).Round(time.Microsecond))
	return nil
}

// ApplyScale stores the factors of an accepted scale prompt and redraws.
// A rejected prompt changes nothing.
func (d *Dialog) ApplyScale(ctx context.Context, r scale.Result) error {
	if !r.Accepted {
		return nil
	}
	if _, err := d.scale.Apply(r); err != nil {
		d.notify.Notify("Scale", errors.UserMessage(err), notify.Warning)
		return err
	}
	return d.Redraw(ctx)
}

// Wheel applies one wheel event to the view and reports whether it zoomed.
func (d *Dialog) Wheel(ctx context.Context, delta int) bool {
	v := d.scene.View()
	if !v.Zoom(delta) {
		return false
	}
	observability.Profile().OnZoom(ctx, v.Scale())
	return true
}

// Export completes name with the suffix of filter and writes the scene.
// An empty name cancels silently and returns "" with a nil error. Any other
// failure is reported at Critical level and returned.
func (d *Dialog) Export(ctx context.Context, name string, filter sink.Filter) (string, error) {
	resolved, err := sink.ResolveName(name, filter)
	if errors.Is(err, errors.ErrCodeNoDestination) {
		d.logger.Debug("export cancelled")
		return "", nil
	}
	if err != nil {
		d.exportFailed(name, err)
		return "", err
	}

	format := sink.FormatOf(resolved).String()
	start := time.Now()
	observability.Export().OnExportStart(ctx, resolved, format)
	err = sink.Export(d.scene, resolved, d.cfg.Export)
	observability.Export().OnExportComplete(ctx, resolved, format, time.Since(start), err)
	if err != nil {
		d.exportFailed(resolved, err)
		return "", err
	}

	d.logger.Infof("exported to %s", resolved)
	return resolved, nil
}

func (d *Dialog) exportFailed(name string, err error) {
	d.notify.Notify("Error", fmt.Sprintf("Failed to export to %s", name), notify.Critical)
	d.logger.Error("export failed", "name", name, "err", err)
}
