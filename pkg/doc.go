// Package pkg provides the core libraries for geocore drilling profiles.
//
// # Overview
//
// geocore draws a set of drill holes as a stratigraphic profile: every hole
// becomes a column of colored layer boxes, columns are ordered along a
// geographic direction, and matching layer boundaries of neighboring holes
// are linked by connector lines. The result is shown in an interactive
// terminal viewer or exported as SVG, PNG or JPEG.
//
// # Architecture
//
// The typical data flow:
//
//	JSON / XLSX input
//	         ↓
//	    [drill/source] (read holes and layer records)
//	         ↓
//	    [render/profile/ordering] (sort along a direction)
//	         ↓
//	    [render/profile/layout] (resolve layers, build boxes and connectors)
//	         ↓
//	    [render/profile/scene] (apply the scale, compose, bound)
//	         ↓
//	    [render/profile/sink] (SVG or raster file)
//
// [dialog] ties the steps together into one profile session and reports
// problems through a [notify] sink.
//
// # Quick Start
//
//	holes, _ := source.Import("holes.json")
//	d := dialog.New(dialog.Holes(holes), resolver.New(notify.Discard{}))
//	_ = d.DrawProfiles(ctx, ordering.WestEast)
//	_ = d.ApplyScale(ctx, scale.Accept(1, 2))
//	name, _ := d.Export(ctx, "section", sink.FilterVector) // section.svg
//
// # Main Packages
//
// [drill] - Drill holes, raw layer records and the Layer Resolver contract.
// [drill/resolver] is the default resolver; [drill/source] reads and writes
// JSON and XLSX input.
//
// [render/profile] - The profile pipeline: geometry, ordering, layout,
// scaling, styling, scene composition and export.
//
// [dialog] - The profile session controller used by the CLI.
//
// [config] - TOML settings with defaults and validation.
//
// [errors], [notify], [observability], [fonts], [buildinfo] - Shared
// infrastructure.
//
// [drill]: https://pkg.go.dev/github.com/geocore/geocore/pkg/drill
// [drill/resolver]: https://pkg.go.dev/github.com/geocore/geocore/pkg/drill/resolver
// [drill/source]: https://pkg.go.dev/github.com/geocore/geocore/pkg/drill/source
// [render/profile]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile
// [render/profile/ordering]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/ordering
// [render/profile/layout]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/layout
// [render/profile/scene]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/scene
// [render/profile/sink]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/sink
// [dialog]: https://pkg.go.dev/github.com/geocore/geocore/pkg/dialog
// [config]: https://pkg.go.dev/github.com/geocore/geocore/pkg/config
// [errors]: https://pkg.go.dev/github.com/geocore/geocore/pkg/errors
// [notify]: https://pkg.go.dev/github.com/geocore/geocore/pkg/notify
// [observability]: https://pkg.go.dev/github.com/geocore/geocore/pkg/observability
// [fonts]: https://pkg.go.dev/github.com/geocore/geocore/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/geocore/geocore/pkg/buildinfo
package pkg
