// Package source reads drill-hole selections from files.
//
// Two input formats are supported:
//
//   - JSON: an object with a "holes" array; see [ReadJSON].
//   - XLSX: a workbook with a "holes" sheet and a "layers" sheet; see [ReadXLSX].
//
// [Import] picks the reader from the file extension. Every reader validates
// hole names and coordinates and rejects duplicate hole names, so the
// returned selection is safe to sort and assemble.
//
// Example JSON input:
//
//	{
//	  "holes": [
//	    {
//	      "name": "B1", "xcoord": 3512.5, "ycoord": 5710.0,
//	      "layers": [
//	        {"from": 0, "to": 1.2, "label": "topsoil", "color": "saddlebrown"},
//	        {"from": 1.2, "to": 4, "label": "sand", "color": "#f4d03f", "texture": "dots"}
//	      ]
//	    }
//	  ]
//	}
package source

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/errors"
)

// Import reads the selection at path, choosing the reader by extension.
// ".xlsx" and ".xlsm" use [ImportXLSX]; everything else is read as JSON.
func Import(path string) ([]drill.Hole, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ImportXLSX(path)
	default:
		return ImportJSON(path)
	}
}

// Select returns the holes whose names are listed, in the order they appear
// in holes. An empty names list selects everything.
func Select(holes []drill.Hole, names []string) ([]drill.Hole, error) {
	if len(names) == 0 {
		return holes, nil
	}
	for _, n := range names {
		if !slices.ContainsFunc(holes, func(h drill.Hole) bool { return h.Name == n }) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "unknown hole %q", n)
		}
	}
	out := make([]drill.Hole, 0, len(names))
	for _, h := range holes {
		if slices.Contains(names, h.Name) {
			out = append(out, h)
		}
	}
	return out, nil
}

func validate(holes []drill.Hole) error {
	seen := make(map[string]struct{}, len(holes))
	for _, h := range holes {
		if err := errors.ValidateHoleName(h.Name); err != nil {
			return err
		}
		if _, dup := seen[h.Name]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate hole %q", h.Name)
		}
		seen[h.Name] = struct{}{}
		if err := errors.ValidateCoordinate(h.Name, drill.AttrX, h.X); err != nil {
			return err
		}
		if err := errors.ValidateCoordinate(h.Name, drill.AttrY, h.Y); err != nil {
			return err
		}
	}
	return nil
}

func openErr(path string, err error) error {
	return errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
}

func decodeErr(path string, err error) error {
	return fmt.Errorf("%s: %w", path, err)
}
