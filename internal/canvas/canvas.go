package canvas

import (
	"sync"

	"github.com/dendrolab/ringview/internal/geometry"
)

// State is a snapshot of the canvas for rendering: viewport, marker in
// image space and, when resolvable, the marker's screen position for the
// overlay.
type State struct {
	Zoom         float64         `json:"zoom"`
	Offset       geometry.Vec    `json:"offset"`
	Panning      bool            `json:"panning"`
	Marker       *geometry.Pixel `json:"marker,omitempty"`
	MarkerScreen *geometry.Vec   `json:"markerScreen,omitempty"`
	Dragging     bool            `json:"dragging"`
}

// Controller combines the viewport and marker controllers for the image
// currently shown and routes pointer events between them: the secondary
// button pans, everything else places the marker. Handlers run on the
// server's request goroutines, so the whole controller is mutex-guarded.
type Controller struct {
	mu        sync.Mutex
	container geometry.Size
	imageSize *geometry.Size
	viewport  *Viewport
	marker    *Marker
}

func NewController(onCommit func(geometry.Pixel)) *Controller {
	return &Controller{
		viewport: NewViewport(),
		marker:   NewMarker(onCommit),
	}
}

// SetView records the measured container rectangle and the natural size
// of the displayed image. Until both are known, pointer events cannot be
// resolved into image pixels.
func (c *Controller) SetView(container geometry.Size, image *geometry.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.container = container
	c.imageSize = image
}

func (c *Controller) placement() geometry.Placement {
	p := geometry.Placement{
		Container: c.container,
		Zoom:      c.viewport.Zoom(),
		Offset:    c.viewport.Offset(),
	}
	if c.imageSize != nil {
		p.Image = *c.imageSize
	}
	return p
}

func (c *Controller) PointerDown(button Button, p geometry.Vec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewport.PointerDown(button, p) {
		return
	}
	c.marker.PointerDown(button, p, c.placement())
}

func (c *Controller) PointerMove(p geometry.Vec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.PointerMove(p)
	c.marker.PointerMove(p, c.placement())
}

func (c *Controller) PointerUp() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.PointerUp()
	c.marker.PointerUp()
}

func (c *Controller) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.PointerLeave()
}

func (c *Controller) Wheel(deltaY float64, cursor geometry.Vec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.Wheel(deltaY, cursor, c.container)
}

func (c *Controller) ZoomIn() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.ZoomIn()
}

func (c *Controller) ZoomOut() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.ZoomOut()
}

func (c *Controller) SetZoom(value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.SetZoom(value)
}

func (c *Controller) ResetZoom() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewport.Reset()
}

// SwitchImage resets the viewport for a newly selected image and seeds
// the marker from its persisted coordinates, or clears it.
func (c *Controller) SwitchImage(image *geometry.Size, seed *geometry.Pixel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.imageSize = image
	c.viewport.Reset()
	c.marker.Set(seed)
}

func (c *Controller) ClearMarker() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.marker.Clear()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := State{
		Zoom:     c.viewport.Zoom(),
		Offset:   c.viewport.Offset(),
		Panning:  c.viewport.Panning(),
		Dragging: c.marker.Dragging(),
	}

	if pos := c.marker.Position(); pos != nil {
		p := *pos
		state.Marker = &p

		if screen, ok := c.placement().ImageToScreen(p); ok {
			state.MarkerScreen = &screen
		}
	}

	return state
}
