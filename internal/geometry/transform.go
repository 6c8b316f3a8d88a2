package geometry

import "math"

// Vec is a point or offset in screen (container) pixel space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Size is a rectangle dimension in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Pixel is an integer point in natural image pixel space.
type Pixel struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Placement describes how an image is letterboxed, centered, zoomed and
// panned inside its container. The zero value is unresolvable.
type Placement struct {
	Container Size
	Image     Size
	Zoom      float64
	Offset    Vec
}

// Resolvable reports whether both rectangle sizes are known.
func (p Placement) Resolvable() bool {
	return !p.Container.IsZero() && !p.Image.IsZero()
}

// Scale is the screen pixels per image pixel ratio: the letterbox fit
// factor multiplied by the zoom.
func (p Placement) Scale() float64 {
	fit := math.Min(p.Container.Width/p.Image.Width, p.Container.Height/p.Image.Height)
	return fit * p.Zoom
}

// origin is the screen position of the image's top-left corner: centered
// in the container, then shifted by the pan offset.
func (p Placement) origin() Vec {
	scale := p.Scale()
	return Vec{
		X: p.Container.Width/2 - p.Image.Width*scale/2 + p.Offset.X,
		Y: p.Container.Height/2 - p.Image.Height*scale/2 + p.Offset.Y,
	}
}

// ScreenToImage maps a container-relative point to the nearest image
// pixel, clamped to [0, width] x [0, height]. ok is false when either
// rectangle is unknown.
func (p Placement) ScreenToImage(s Vec) (Pixel, bool) {
	if !p.Resolvable() {
		return Pixel{}, false
	}

	scale := p.Scale()
	rel := s.Sub(p.origin())

	px := int(math.Round(rel.X / scale))
	py := int(math.Round(rel.Y / scale))

	return Pixel{
		X: clampInt(px, 0, int(p.Image.Width)),
		Y: clampInt(py, 0, int(p.Image.Height)),
	}, true
}

// ImageToScreen maps an image pixel to its container-relative screen
// position. Used for rendering the marker overlay, so it never clamps.
func (p Placement) ImageToScreen(px Pixel) (Vec, bool) {
	if !p.Resolvable() {
		return Vec{}, false
	}

	scale := p.Scale()
	o := p.origin()

	return Vec{
		X: o.X + float64(px.X)*scale,
		Y: o.Y + float64(px.Y)*scale,
	}, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
