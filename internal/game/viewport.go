package game

import (
	"github.com/spacehole-rogue/starfield/internal/world"
)

// ZoomDir is the direction of a zoom step.
type ZoomDir int8

const (
	ZoomIn ZoomDir = iota
	ZoomOut
)

// ViewportParams sizes a new viewport. SidebarWidth is taken off the right
// edge of the screen; the rest is the map region.
type ViewportParams struct {
	ScreenWidth  float64
	ScreenHeight float64
	SidebarWidth float64
	Scale        float64
	MinScale     float64
	MaxScale     float64 // 0 = no upper bound
}

// Viewport maps world coordinates to screen pixels and back.
//
//	screen = floor(world * Scale) + Pan
//
// so Pan is the screen position of the world origin.
type Viewport struct {
	Pan       world.Point
	Scale     float64
	MinScale  float64
	MaxScale  float64
	Screen    world.Point
	MapRegion world.Rect
}

// NewViewport creates a viewport with the world origin at the center of the map region.
func NewViewport(p ViewportParams) *Viewport {
	v := &Viewport{
		Scale:    p.Scale,
		MinScale: p.MinScale,
		MaxScale: p.MaxScale,
	}
	v.Resize(p.ScreenWidth, p.ScreenHeight, p.SidebarWidth)
	v.Pan = v.MapRegion.Center()
	return v
}

// Resize changes the screen size. The pan moves with the map-region center
// so whatever was centered stays centered.
func (v *Viewport) Resize(width, height, sidebarWidth float64) {
	old := v.MapRegion.Center()
	v.Screen = world.Pt(width, height)
	v.MapRegion = world.RectXYWH(0, 0, max(0, width-sidebarWidth), height)
	if old != (world.Point{}) {
		v.Pan = v.Pan.Add(v.MapRegion.Center().Sub(old))
	}
}

// SidebarRegion is the part of the screen right of the map region.
func (v *Viewport) SidebarRegion() world.Rect {
	return world.Rect{Min: world.Pt(v.MapRegion.Max.X, 0), Max: v.Screen}
}

func (v *Viewport) WorldToScreen(p world.Point) world.Point {
	return p.Scale(v.Scale).Floor().Add(v.Pan)
}

// ScreenToWorld inverts WorldToScreen, ignoring the floor.
func (v *Viewport) ScreenToWorld(p world.Point) world.Point {
	return p.Sub(v.Pan).Scale(1 / v.Scale)
}

// PanBy shifts the view by a screen-space delta.
func (v *Viewport) PanBy(delta world.Point) {
	v.Pan = v.Pan.Add(delta)
}

// Zoom steps the scale by inc and reports whether anything changed. A step
// past MinScale or MaxScale is a no-op. The world point under the center of
// the map region stays where it is on screen.
func (v *Viewport) Zoom(dir ZoomDir, inc float64) bool {
	next := v.Scale
	switch dir {
	case ZoomIn:
		next += inc
		if v.MaxScale > 0 && next > v.MaxScale {
			return false
		}
	case ZoomOut:
		next -= inc
		if next < v.MinScale {
			return false
		}
	}
	if next == v.Scale || next <= 0 {
		return false
	}
	v.zoomAbout(v.MapRegion.Center(), next)
	return true
}

// zoomAbout sets the scale to next while keeping anchor fixed on screen.
func (v *Viewport) zoomAbout(anchor world.Point, next float64) {
	ratio := next / v.Scale
	v.Pan = anchor.Sub(anchor.Sub(v.Pan).Scale(ratio))
	v.Scale = next
}

// Project writes the current screen position of every star and group.
func (v *Viewport) Project(w *world.World) {
	for _, s := range w.Stars {
		w.SetScreen(s, v.WorldToScreen(s.Location))
	}
	for _, g := range w.Groups() {
		w.SetScreen(g, v.WorldToScreen(g.Position()))
	}
}
