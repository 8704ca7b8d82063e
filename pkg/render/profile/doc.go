// Package profile groups the stages that turn drill holes into a drawn
// stratigraphic profile.
//
//   - [geom]: rectangles, points and the source→target mapping
//   - [ordering]: the four drawing directions and the stable hole sort
//   - [layout]: layer boxes, profiles and inter-hole connectors
//   - [scale]: the user x/y scale factors
//   - [paint]: colors and paint styles
//   - [scene]: the composed scene, its bounding rect and the zoom view
//   - [sink]: SVG and raster export
//
// Drawing units are centimetres times [layout.UnitFactor]; x grows with the
// hole rank and y grows downward with depth.
//
// [geom]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/geom
// [ordering]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/ordering
// [layout]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/layout
// [layout.UnitFactor]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/layout#UnitFactor
// [scale]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/scale
// [paint]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/paint
// [scene]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/scene
// [sink]: https://pkg.go.dev/github.com/geocore/geocore/pkg/render/profile/sink
package profile
