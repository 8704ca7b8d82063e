package sink

import (
	"path/filepath"
	"strings"

	"github.com/geocore/geocore/pkg/errors"
	"github.com/geocore/geocore/pkg/render/profile/geom"
	"github.com/geocore/geocore/pkg/render/profile/scene"
)

// Format is the kind of drawing surface an export uses.
type Format int

const (
	Raster Format = iota
	Vector
)

func (f Format) String() string {
	if f == Vector {
		return "vector"
	}
	return "raster"
}

// FormatOf picks the format for a file name: Vector for ".svg" in any case,
// Raster for everything else.
func FormatOf(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".svg") {
		return Vector
	}
	return Raster
}

// Filter is the file-type choice offered next to the file name.
type Filter int

const (
	FilterRaster Filter = iota
	FilterVector
)

// Suffix returns the suffix appended to names that have none.
func (f Filter) Suffix() string {
	if f == FilterVector {
		return ".svg"
	}
	return ".png"
}

func (f Filter) String() string {
	if f == FilterVector {
		return "Vector graphics (*.svg)"
	}
	return "Images (*.png *.jpg)"
}

// ParseFilter accepts "raster", "png", "vector" or "svg". An empty string
// selects the raster filter.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raster", "png", "image", "images":
		return FilterRaster, nil
	case "vector", "svg":
		return FilterVector, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidFormat, "invalid filter: %q (must be raster or vector)", s)
	}
}

// ErrNoDestination reports that no file name was chosen. Callers treat it as
// a silent cancel.
var ErrNoDestination = errors.New(errors.ErrCodeNoDestination, "no destination chosen")

// ResolveName completes a user-chosen file name. A name without a suffix
// gets the suffix of the selected filter.
func ResolveName(name string, f Filter) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", ErrNoDestination
	}
	if err := errors.ValidateOutputPath(name); err != nil {
		return "", err
	}
	// A trailing dot counts as no suffix.
	if ext := filepath.Ext(name); ext == "" || ext == "." {
		name = strings.TrimSuffix(name, ".") + f.Suffix()
	}
	return name, nil
}

// Options configure an export.
type Options struct {
	Title       string
	Description string
	Margin      float64
	JPEGQuality int
}

// DefaultOptions returns the standard title, description and margin.
func DefaultOptions() Options {
	return Options{
		Title:       "geoCore",
		Description: "This SVG was generated with geocore, a renderer for stratigraphic drilling profiles",
		Margin:      scene.DefaultMargin,
		JPEGQuality: 90,
	}
}

// Frame returns the source and target rectangles of an export. It clears
// the scene selection.
func Frame(s *scene.Scene, margin float64) (source, target geom.Rect) {
	source = s.BoundingRect(margin)
	return source, geom.R(0, 0, source.W, source.H)
}

// Export renders s into the file name using the format of its suffix.
func Export(s *scene.Scene, name string, opts Options) (err error) {
	if name == "" {
		return ErrNoDestination
	}
	if err := errors.ValidateOutputPath(name); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(errors.ErrCodeExportFailed, "export to %s: %v", name, r)
		}
	}()

	source, target := Frame(s, opts.Margin)
	switch FormatOf(name) {
	case Vector:
		err = exportSVG(s, name, source, target, opts)
	default:
		err = exportRaster(s, name, source, target, opts)
	}
	if err != nil && errors.GetCode(err) == "" {
		err = errors.Wrap(errors.ErrCodeExportFailed, err, "export to %s", name)
	}
	return err
}

func ioErr(err error, name string) error {
	return errors.Wrap(errors.ErrCodeIO, err, "write %s", name)
}
