package canvas

import "github.com/dendrolab/ringview/internal/geometry"

// Button identifies which pointer button an event carries.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

const (
	MinZoom  = 1.0
	MaxZoom  = 5.0
	ZoomStep = 0.25
)

// Viewport owns the zoom factor and pan offset of the image view.
// The secondary button is repurposed for panning, which is why the
// front-end suppresses the context menu over the canvas.
type Viewport struct {
	zoom      float64
	offset    geometry.Vec
	panning   bool
	panAnchor geometry.Vec
}

func NewViewport() *Viewport {
	return &Viewport{zoom: MinZoom}
}

func clampZoom(value float64) float64 {
	if value < MinZoom {
		return MinZoom
	}
	if value > MaxZoom {
		return MaxZoom
	}
	return value
}

func (v *Viewport) Zoom() float64 {
	return v.zoom
}

func (v *Viewport) Offset() geometry.Vec {
	return v.offset
}

func (v *Viewport) Panning() bool {
	return v.panning
}

func (v *Viewport) ZoomIn() {
	v.zoom = clampZoom(v.zoom + ZoomStep)
}

func (v *Viewport) ZoomOut() {
	v.zoom = clampZoom(v.zoom - ZoomStep)
}

func (v *Viewport) SetZoom(value float64) {
	v.zoom = clampZoom(value)
}

func (v *Viewport) Reset() {
	v.zoom = MinZoom
	v.offset = geometry.Vec{}
	v.panning = false
}

// Wheel applies one cursor-anchored zoom step. Scrolling down zooms out.
// When the zoom actually changes, the offset is adjusted so the image
// point under the cursor keeps its screen position. Returns whether
// anything changed.
func (v *Viewport) Wheel(deltaY float64, cursor geometry.Vec, container geometry.Size) bool {
	step := ZoomStep
	if deltaY > 0 {
		step = -ZoomStep
	}

	newZoom := clampZoom(v.zoom + step)
	if newZoom == v.zoom {
		return false
	}

	// The placement scales about the container center, so the anchor is
	// the cursor expressed in the center-origin frame.
	ratio := newZoom / v.zoom
	anchor := geometry.Vec{
		X: cursor.X - container.Width/2,
		Y: cursor.Y - container.Height/2,
	}
	v.offset = geometry.Vec{
		X: anchor.X - (anchor.X-v.offset.X)*ratio,
		Y: anchor.Y - (anchor.Y-v.offset.Y)*ratio,
	}
	v.zoom = newZoom

	return true
}

// PointerDown starts panning on the secondary button and reports whether
// the event was consumed.
func (v *Viewport) PointerDown(button Button, p geometry.Vec) bool {
	if button != ButtonSecondary {
		return false
	}

	v.panning = true
	v.panAnchor = p.Sub(v.offset)
	return true
}

func (v *Viewport) PointerMove(p geometry.Vec) {
	if !v.panning {
		return
	}

	v.offset = p.Sub(v.panAnchor)
}

func (v *Viewport) PointerUp() {
	v.panning = false
}

func (v *Viewport) PointerLeave() {
	v.panning = false
}
