package cli

import (
	"context"
	"time"

	"github.com/geocore/geocore/pkg/drill"
	"github.com/geocore/geocore/pkg/drill/source"
	"github.com/geocore/geocore/pkg/observability"
)

// loadHoles reads the input file and narrows it to the selected names.
// An empty selection keeps every hole in file order.
func loadHoles(ctx context.Context, path string, selected []string) (holes []drill.Hole, err error) {
	logger := loggerFromContext(ctx)

	start := time.Now()
	observability.Input().OnImportStart(ctx, path)
	defer func() {
		observability.Input().OnImportComplete(ctx, path, len(holes), time.Since(start), err)
	}()

	all, err := source.Import(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("input loaded", "path", path, "holes", len(all))

	if len(selected) == 0 {
		return all, nil
	}
	return source.Select(all, selected)
}
