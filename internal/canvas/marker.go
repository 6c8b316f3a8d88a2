package canvas

import "github.com/dendrolab/ringview/internal/geometry"

// Marker owns the user-designated center point in image pixel space.
// A single primary-button click both places and commits the marker;
// dragging updates the position continuously but commits only on
// release, so the change callback fires once per gesture end.
type Marker struct {
	position *geometry.Pixel
	dragging bool
	onCommit func(geometry.Pixel)
}

func NewMarker(onCommit func(geometry.Pixel)) *Marker {
	return &Marker{onCommit: onCommit}
}

func (m *Marker) Position() *geometry.Pixel {
	return m.position
}

func (m *Marker) Dragging() bool {
	return m.dragging
}

// Set seeds the marker externally, e.g. from an entry's persisted
// coordinates when switching images. It does not commit.
func (m *Marker) Set(p *geometry.Pixel) {
	m.position = p
}

func (m *Marker) Clear() {
	m.position = nil
}

// PointerDown places the marker at the clicked point and commits it
// immediately. Secondary-button presses belong to the viewport and are
// ignored here.
func (m *Marker) PointerDown(button Button, screen geometry.Vec, placement geometry.Placement) {
	if button == ButtonSecondary {
		return
	}

	m.dragging = true

	if p, ok := placement.ScreenToImage(screen); ok {
		m.position = &p
		m.commit(p)
	}
}

// PointerMove updates the position while dragging without committing,
// to avoid a callback storm during the gesture.
func (m *Marker) PointerMove(screen geometry.Vec, placement geometry.Placement) {
	if !m.dragging {
		return
	}

	if p, ok := placement.ScreenToImage(screen); ok {
		m.position = &p
	}
}

// PointerUp commits the final position of a drag, if any, and always
// ends the dragging state.
func (m *Marker) PointerUp() {
	if m.dragging && m.position != nil {
		m.commit(*m.position)
	}
	m.dragging = false
}

func (m *Marker) commit(p geometry.Pixel) {
	if m.onCommit != nil {
		m.onCommit(p)
	}
}
