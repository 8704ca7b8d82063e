package source

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/errors"
)

// Sheet names and column headers of the workbook layout.
const (
	SheetHoles  = "holes"
	SheetLayers = "layers"

	ColHole    = "hole"
	ColFrom    = "from"
	ColTo      = "to"
	ColLabel   = "label"
	ColColor   = "color"
	ColTexture = "texture"
)

// ReadXLSX decodes a workbook selection from r.
//
// The "holes" sheet needs the columns name, xcoord and ycoord. The optional
// "layers" sheet needs hole, from and to, and may carry label, color and
// texture. Header lookup is case-insensitive and column order is free. Layer
// rows are attached to holes in sheet order; rows naming an unknown hole are
// an error.
func ReadXLSX(r io.Reader) ([]drill.Hole, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open workbook")
	}
	defer f.Close()
	return readWorkbook(f)
}

// ImportXLSX reads the workbook at path.
func ImportXLSX(path string) ([]drill.Hole, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, openErr(path, err)
	}
	defer f.Close()

	holes, err := readWorkbook(f)
	if err != nil {
		return nil, decodeErr(path, err)
	}
	return holes, nil
}

func readWorkbook(f *excelize.File) ([]drill.Hole, error) {
	sheets := f.GetSheetList()
	if !slices.Contains(sheets, SheetHoles) {
		return nil, errors.New(errors.ErrCodeSheetNotFound, "workbook has no %q sheet", SheetHoles)
	}

	rows, err := f.GetRows(SheetHoles)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", SheetHoles)
	}
	holes, err := parseHoles(rows)
	if err != nil {
		return nil, err
	}

	if slices.Contains(sheets, SheetLayers) {
		rows, err := f.GetRows(SheetLayers)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read sheet %q", SheetLayers)
		}
		if err := attachLayers(holes, rows); err != nil {
			return nil, err
		}
	}

	if err := validate(holes); err != nil {
		return nil, err
	}
	return holes, nil
}

func parseHoles(rows [][]string) ([]drill.Hole, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols, err := columns(SheetHoles, rows[0], drill.AttrName, drill.AttrX, drill.AttrY)
	if err != nil {
		return nil, err
	}

	var holes []drill.Hole
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := i + 2
		x, err := number(SheetHoles, line, drill.AttrX, cell(row, cols[drill.AttrX]))
		if err != nil {
			return nil, err
		}
		y, err := number(SheetHoles, line, drill.AttrY, cell(row, cols[drill.AttrY]))
		if err != nil {
			return nil, err
		}
		holes = append(holes, drill.Hole{
			Name: strings.TrimSpace(cell(row, cols[drill.AttrName])),
			X:    x,
			Y:    y,
		})
	}
	return holes, nil
}

func attachLayers(holes []drill.Hole, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	cols, err := columns(SheetLayers, rows[0], ColHole, ColFrom, ColTo)
	if err != nil {
		return err
	}
	optional := headerIndex(rows[0])

	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		line := i + 2
		name := strings.TrimSpace(cell(row, cols[ColHole]))
		idx := slices.IndexFunc(holes, func(h drill.Hole) bool { return h.Name == name })
		if idx < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "sheet %q row %d: unknown hole %q", SheetLayers, line, name)
		}
		from, err := number(SheetLayers, line, ColFrom, cell(row, cols[ColFrom]))
		if err != nil {
			return err
		}
		to, err := number(SheetLayers, line, ColTo, cell(row, cols[ColTo]))
		if err != nil {
			return err
		}
		holes[idx].Records = append(holes[idx].Records, drill.Record{
			From:    from,
			To:      to,
			Label:   optionalCell(row, optional, ColLabel),
			Color:   optionalCell(row, optional, ColColor),
			Texture: optionalCell(row, optional, ColTexture),
		})
	}
	return nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

func columns(sheet string, header []string, required ...string) (map[string]int, error) {
	idx := headerIndex(header)
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "sheet %q: missing column %q", sheet, name)
		}
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func optionalCell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok {
		return ""
	}
	return strings.TrimSpace(cell(row, i))
}

func number(sheet string, line int, col, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "sheet %q row %d: %s is not a number", sheet, line, col)
	}
	return v, nil
}

func blank(row []string) bool {
	return !slices.ContainsFunc(row, func(s string) bool { return strings.TrimSpace(s) != "" })
}
