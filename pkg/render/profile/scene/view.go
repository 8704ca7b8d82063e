package scene

import "github.com/geocore/geocore/pkg/render/profile/geom"

// Zoom steps applied per wheel notch.
const (
	ZoomIn  = 1.15
	ZoomOut = 0.85
)

// View is the interactive window onto a scene. Its zoom is transient: it
// never touches the scene geometry and is reset whenever the scene is
// repopulated.
type View struct {
	scale   float64
	visible geom.Rect
}

// Scale returns the current zoom factor; 1 means unzoomed.
func (v *View) Scale() float64 {
	if v.scale == 0 {
		return 1
	}
	return v.scale
}

// Zoom applies one wheel event. A positive delta zooms in, a negative one
// zooms out, zero is ignored. It reports whether the scale changed.
func (v *View) Zoom(delta int) bool {
	switch {
	case delta > 0:
		v.scale = v.Scale() * ZoomIn
	case delta < 0:
		v.scale = v.Scale() * ZoomOut
	default:
		return false
	}
	return true
}

// Reset restores the identity transform.
func (v *View) Reset() { v.scale = 1 }

// Visible returns the scene region the view shows at scale 1.
func (v *View) Visible() geom.Rect { return v.visible }

// SetVisible sets the scene region shown at scale 1.
func (v *View) SetVisible(r geom.Rect) { v.visible = r }
