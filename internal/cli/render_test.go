package cli

import (
	"context"
	stderrors "errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/geocore/geocore/pkg/config"
	"github.com/geocore/geocore/pkg/errors"
	"github.com/geocore/geocore/pkg/render/profile/ordering"
	"github.com/geocore/geocore/pkg/render/profile/scale"
)

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name    string
		opts    renderOpts
		check   func(config.Options) bool
		wantErr bool
	}{
		{
			name:  "empty flags keep config",
			opts:  renderOpts{},
			check: func(c config.Options) bool { return c.Direction == config.Default().Direction },
		},
		{
			name:  "direction",
			opts:  renderOpts{direction: "east-west"},
			check: func(c config.Options) bool { return c.DirectionValue() == ordering.EastWest },
		},
		{
			name:  "captions off",
			opts:  renderOpts{captions: "off"},
			check: func(c config.Options) bool { return !c.Scene.Captions },
		},
		{
			name:    "bad captions",
			opts:    renderOpts{captions: "maybe"},
			wantErr: true,
		},
		{
			name:    "bad direction",
			opts:    renderOpts{direction: "up"},
			wantErr: true,
		},
		{
			name:    "bad filter",
			opts:    renderOpts{filter: "pdf"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applyFlags(config.Default(), tt.opts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !tt.check(got) {
				t.Errorf("applyFlags() = %+v", got)
			}
		})
	}
}

func TestScaleResult(t *testing.T) {
	tests := []struct {
		name string
		opts renderOpts
		want scale.Result
	}{
		{"no flags", renderOpts{}, scale.Reject()},
		{"x only", renderOpts{scaleX: 2}, scale.Accept(2, 1)},
		{"y only", renderOpts{scaleY: 3}, scale.Accept(1, 3)},
		{"both", renderOpts{scaleX: 0.5, scaleY: 4}, scale.Accept(0.5, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleResult(tt.opts); got != tt.want {
				t.Errorf("scaleResult() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultOutput(t *testing.T) {
	tests := []struct{ in, want string }{
		{"holes.json", "holes"},
		{"data/site.xlsx", "data/site"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := defaultOutput(tt.in); got != tt.want {
			t.Errorf("defaultOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunRenderRaster(t *testing.T) {
	quietStdout(t)
	input := writeHoles(t)
	out := filepath.Join(t.TempDir(), "section")

	c := New(io.Discard, LogInfo)
	opts := renderOpts{output: out, scaleY: 2}
	if err := c.runRender(c.context(context.Background()), input, config.Default(), opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	f, err := os.Open(out + ".png")
	if err != nil {
		t.Fatalf("expected PNG output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		t.Errorf("empty image: %v", b)
	}
}

func TestRunRenderErrors(t *testing.T) {
	quietStdout(t)
	input := writeHoles(t)
	c := New(io.Discard, LogInfo)
	ctx := c.context(context.Background())

	t.Run("unknown hole", func(t *testing.T) {
		err := c.runRender(ctx, input, config.Default(), renderOpts{selected: []string{"B9"}})
		if err == nil {
			t.Fatal("expected an error for an unknown hole")
		}
	})

	t.Run("invalid scale", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "x.png")
		err := c.runRender(ctx, input, config.Default(), renderOpts{output: out, scaleX: -1})
		if !errors.Is(err, errors.ErrCodeInvalidScale) {
			t.Fatalf("error = %v, want %s", err, errors.ErrCodeInvalidScale)
		}
		if _, statErr := os.Stat(out); statErr == nil {
			t.Error("no file should be written after a rejected scale")
		}
	})

	t.Run("interrupted", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		out := filepath.Join(t.TempDir(), "x.svg")
		err := c.runRender(cctx, input, config.Default(), renderOpts{output: out})
		if !stderrors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "missing", "x.svg")
		err := c.runRender(ctx, input, config.Default(), renderOpts{output: out})
		if err == nil {
			t.Fatal("expected an export error")
		}
	})
}
