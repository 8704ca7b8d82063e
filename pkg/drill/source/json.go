package source

import (
	"encoding/json"
	"io"
	"os"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/errors"
)

type document struct {
	Holes []drill.Hole `json:"holes"`
}

// ReadJSON decodes a JSON selection from r.
//
// ReadJSON returns an error if the JSON is malformed, a hole has an empty or
// duplicate name, or a coordinate is not a finite number. Missing "layers"
// arrays are fine: such holes render as empty profiles. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) ([]drill.Hole, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode holes")
	}
	if err := validate(doc.Holes); err != nil {
		return nil, err
	}
	return doc.Holes, nil
}

// ImportJSON reads the JSON file at path.
func ImportJSON(path string) ([]drill.Hole, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openErr(path, err)
	}
	defer f.Close()

	holes, err := ReadJSON(f)
	if err != nil {
		return nil, decodeErr(path, err)
	}
	return holes, nil
}

// WriteJSON encodes holes in the format accepted by [ReadJSON].
func WriteJSON(holes []drill.Hole, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{Holes: holes})
}

// ExportJSON writes holes to path as JSON.
func ExportJSON(holes []drill.Hole, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := WriteJSON(holes, f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
