package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/geocore/geocore/pkg/errors"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
	"github.com/geocore/geocore/pkg/render/profile/sink"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if Default().DirectionValue() != ordering.NorthSouth {
		t.Error("default direction should be north-south")
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
direction = "we"

[layout]
hole_spacing = 8.0

[scene]
connector_color = "#336699"
connector_dash = []
captions = false

[export]
filter = "svg"
title = "Section A-A'"
`)
	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if opts.DirectionValue() != ordering.WestEast {
		t.Errorf("direction = %q", opts.Direction)
	}
	if opts.Layout.HoleSpacing != 8 || opts.Layout.HoleWidth != 2 {
		t.Errorf("layout = %+v, want spacing 8 and default width 2", opts.Layout)
	}
	so := opts.SceneOptions()
	if so.Captions || so.ConnectorColor != "#336699" || len(so.ConnectorDash) != 0 {
		t.Errorf("scene options = %+v", so)
	}
	if opts.FilterValue() != sink.FilterVector {
		t.Errorf("filter = %v, want vector", opts.FilterValue())
	}
	if eo := opts.ExportOptions(); eo.Title != "Section A-A'" || eo.Margin != 5 {
		t.Errorf("export options = %+v", eo)
	}
	if lo := opts.LayoutOptions(); lo.HoleSpacing != 8 {
		t.Errorf("layout options = %+v", lo)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want errors.Code
	}{
		{"syntax", "direction = ", errors.ErrCodeInvalidConfig},
		{"unknown key", "colour = \"red\"", errors.ErrCodeInvalidConfig},
		{"bad direction", `direction = "up"`, errors.ErrCodeInvalidConfig},
		{"bad filter", "[export]\nfilter = \"pdf\"", errors.ErrCodeInvalidConfig},
		{"zero width", "[layout]\nhole_width = 0.0", errors.ErrCodeInvalidConfig},
		{"overlapping holes", "[layout]\nhole_width = 6.0", errors.ErrCodeInvalidConfig},
		{"negative margin", "[export]\nmargin = -1.0", errors.ErrCodeInvalidConfig},
		{"jpeg quality", "[export]\njpeg_quality = 101", errors.ErrCodeInvalidConfig},
		{"negative dash", "[scene]\nconnector_dash = [2.0, -1.0]", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load err = %v, want %s", err, tt.want)
			}
			if opts.Direction != Default().Direction {
				t.Errorf("failed load should return defaults, got direction %q", opts.Direction)
			}
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load without file: %v", err)
	}
	if opts.Direction != Default().Direction {
		t.Errorf("direction = %q", opts.Direction)
	}

	if err := os.MkdirAll(filepath.Join(dir, "geocore"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "geocore", "config.toml"), []byte(`direction = "east-west"`), 0o644); err != nil {
		t.Fatal(err)
	}
	opts, err = Load("")
	if err != nil {
		t.Fatalf("Load with file: %v", err)
	}
	if opts.DirectionValue() != ordering.EastWest {
		t.Errorf("direction = %q, want east-west", opts.Direction)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg", "geocore", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
