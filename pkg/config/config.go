// Package config loads geocore settings from an optional TOML file.
//
// Settings start from [Default], are overlaid by the file and finally by
// command-line flags. A file looks like:
//
//	direction = "west-east"
//	direction_selection = true
//
//	[layout]
//	hole_width = 2.0
//	hole_spacing = 5.0
//
//	[scene]
//	connector_color = "gray"
//	connector_dash = [4.0, 2.0]
//	captions = true
//
//	[export]
//	filter = "vector"
//	margin = 5.0
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/geocore/geocore/pkg/errors"
	"github.com/geocore/geocore/pkg/render/profile/layout"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
	"github.com/geocore/geocore/pkg/render/profile/scene"
	"github.com/geocore/geocore/pkg/render/profile/sink"
)

const (
	appName  = "geocore"
	fileName = "config.toml"
)

// Options is the complete set of user settings.
type Options struct {
	Direction          string `toml:"direction"`
	DirectionSelection bool   `toml:"direction_selection"`

	Layout Layout `toml:"layout"`
	Scene  Scene  `toml:"scene"`
	Export Export `toml:"export"`
}

// Layout holds the horizontal geometry, in profile units.
type Layout struct {
	HoleWidth   float64 `toml:"hole_width"`
	HoleSpacing float64 `toml:"hole_spacing"`
}

// Scene holds connector and caption styling.
type Scene struct {
	ConnectorColor string    `toml:"connector_color"`
	ConnectorWidth float64   `toml:"connector_width"`
	ConnectorDash  []float64 `toml:"connector_dash"`
	Captions       bool      `toml:"captions"`
	CaptionSize    float64   `toml:"caption_size"`
	CaptionColor   string    `toml:"caption_color"`
}

// Export holds output settings.
type Export struct {
	Filter      string  `toml:"filter"`
	Title       string  `toml:"title"`
	Description string  `toml:"description"`
	Margin      float64 `toml:"margin"`
	JPEGQuality int     `toml:"jpeg_quality"`
}

// Default returns the built-in settings.
func Default() Options {
	so := scene.DefaultOptions()
	eo := sink.DefaultOptions()
	return Options{
		Direction:          ordering.Default.String(),
		DirectionSelection: true,
		Layout: Layout{
			HoleWidth:   layout.DefaultHoleWidth,
			HoleSpacing: layout.DefaultHoleSpacing,
		},
		Scene: Scene{
			ConnectorColor: so.ConnectorColor,
			ConnectorWidth: so.ConnectorWidth,
			ConnectorDash:  so.ConnectorDash,
			Captions:       true,
			CaptionSize:    so.CaptionSize,
			CaptionColor:   so.CaptionColor,
		},
		Export: Export{
			Filter:      "raster",
			Title:       eo.Title,
			Description: eo.Description,
			Margin:      eo.Margin,
			JPEGQuality: eo.JPEGQuality,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/geocore/config.toml, falling back to
// ~/.config/geocore/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads settings from path on top of the defaults. An empty path tries
// [DefaultPath] and silently uses the defaults when no file exists there.
func Load(path string) (Options, error) {
	opts := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return opts, nil
		}
		path = p
	}

	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			return opts, nil
		}
		return opts, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}

	md, err := toml.DecodeFile(path, &opts)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := opts.Validate(); err != nil {
		return Default(), err
	}
	return opts, nil
}

// Validate checks that every setting is usable.
func (o Options) Validate() error {
	if _, err := ordering.ParseDirection(o.Direction); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "direction")
	}
	if _, err := sink.ParseFilter(o.Export.Filter); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "export.filter")
	}
	for _, c := range []struct {
		key string
		v   float64
	}{
		{"layout.hole_width", o.Layout.HoleWidth},
		{"layout.hole_spacing", o.Layout.HoleSpacing},
		{"scene.connector_width", o.Scene.ConnectorWidth},
		{"scene.caption_size", o.Scene.CaptionSize},
	} {
		if !(c.v > 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %g", c.key, c.v)
		}
	}
	if o.Layout.HoleSpacing < o.Layout.HoleWidth {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.hole_spacing (%g) must not be smaller than layout.hole_width (%g)",
			o.Layout.HoleSpacing, o.Layout.HoleWidth)
	}
	for _, d := range o.Scene.ConnectorDash {
		if d < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "scene.connector_dash must not contain negative values")
		}
	}
	if o.Export.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "export.margin must not be negative, got %g", o.Export.Margin)
	}
	if o.Export.JPEGQuality < 1 || o.Export.JPEGQuality > 100 {
		return errors.New(errors.ErrCodeInvalidConfig, "export.jpeg_quality must be between 1 and 100, got %d", o.Export.JPEGQuality)
	}
	return nil
}

// DirectionValue returns the parsed start direction. Call after Validate.
func (o Options) DirectionValue() ordering.Direction {
	d, err := ordering.ParseDirection(o.Direction)
	if err != nil {
		return ordering.Default
	}
	return d
}

// FilterValue returns the parsed export filter. Call after Validate.
func (o Options) FilterValue() sink.Filter {
	f, _ := sink.ParseFilter(o.Export.Filter)
	return f
}

// LayoutOptions converts the layout settings.
func (o Options) LayoutOptions() layout.Options {
	return layout.Options{HoleWidth: o.Layout.HoleWidth, HoleSpacing: o.Layout.HoleSpacing}
}

// SceneOptions converts the scene settings.
func (o Options) SceneOptions() scene.Options {
	so := scene.DefaultOptions()
	so.ConnectorColor = o.Scene.ConnectorColor
	so.ConnectorWidth = o.Scene.ConnectorWidth
	so.ConnectorDash = o.Scene.ConnectorDash
	so.Captions = o.Scene.Captions
	so.CaptionSize = o.Scene.CaptionSize
	so.CaptionColor = o.Scene.CaptionColor
	return so
}

// ExportOptions converts the export settings.
func (o Options) ExportOptions() sink.Options {
	return sink.Options{
		Title:       o.Export.Title,
		Description: o.Export.Description,
		Margin:      o.Export.Margin,
		JPEGQuality: o.Export.JPEGQuality,
	}
}
