// Package sink exports a composed profile scene to a file.
//
// # Overview
//
// The output format is chosen once, from the file-name suffix:
//
//   - .svg (any case): vector output via [github.com/ajstarks/svgo/float]
//   - anything else: raster output via [github.com/fogleman/gg]
//
// Raster files are PNG unless the name ends in .jpg or .jpeg, in which case
// the transparent image is flattened onto white and written as JPEG.
//
// # Framing
//
// Both formats frame the scene the same way. The source rectangle is the
// scene's bounding rectangle grown by [Options.Margin]; the target rectangle
// has the same size with its origin at (0, 0). The vector surface carries
// the target rectangle as its viewBox, the raster surface is the target
// size rounded to whole pixels.
//
// # Names
//
// [ResolveName] completes a name chosen by the user: an empty name means the
// user cancelled ([ErrNoDestination]), a name without a suffix gets the suffix
// of the selected [Filter].
//
//	name, err := sink.ResolveName("profile", sink.FilterVector) // "profile.svg"
//	if err == nil {
//	    err = sink.Export(sc, name, sink.DefaultOptions())
//	}
//
// # Failures
//
// [Export] is a single failure boundary: surface construction, rendering and
// persisting either all succeed or yield one error. A panic from a surface
// is recovered and returned as an EXPORT_FAILED error.
package sink
