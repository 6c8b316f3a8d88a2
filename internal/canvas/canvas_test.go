package canvas

import (
	"testing"

	"github.com/dendrolab/ringview/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testView() (geometry.Size, *geometry.Size) {
	// Letterbox fit is 2 for this pair, which keeps expected pixel values
	// easy to read.
	container := geometry.Size{Width: 800, Height: 600}
	image := geometry.Size{Width: 400, Height: 300}
	return container, &image
}

func TestMarker_ClickPlacesAndCommits(t *testing.T) {
	var commits []geometry.Pixel
	c := NewController(func(p geometry.Pixel) { commits = append(commits, p) })

	container, image := testView()
	c.SetView(container, image)

	c.PointerDown(ButtonPrimary, geometry.Vec{X: 400, Y: 300})

	state := c.State()
	require.NotNil(t, state.Marker)
	assert.Equal(t, geometry.Pixel{X: 200, Y: 150}, *state.Marker)
	assert.True(t, state.Dragging)

	// A single click commits immediately on press.
	require.Len(t, commits, 1)
	assert.Equal(t, geometry.Pixel{X: 200, Y: 150}, commits[0])

	// Release commits once more with the final position.
	c.PointerUp()
	assert.Len(t, commits, 2)
	assert.False(t, c.State().Dragging)
}

func TestMarker_DragCommitsOnlyOnRelease(t *testing.T) {
	var commits []geometry.Pixel
	c := NewController(func(p geometry.Pixel) { commits = append(commits, p) })

	container, image := testView()
	c.SetView(container, image)

	c.PointerDown(ButtonPrimary, geometry.Vec{X: 400, Y: 300})
	require.Len(t, commits, 1)

	// Intermediate moves update the position without committing.
	c.PointerMove(geometry.Vec{X: 420, Y: 300})
	c.PointerMove(geometry.Vec{X: 440, Y: 300})
	assert.Len(t, commits, 1)

	state := c.State()
	require.NotNil(t, state.Marker)
	assert.Equal(t, geometry.Pixel{X: 220, Y: 150}, *state.Marker)

	c.PointerUp()
	require.Len(t, commits, 2)
	assert.Equal(t, geometry.Pixel{X: 220, Y: 150}, commits[1])
}

func TestMarker_MoveWithoutDragDoesNothing(t *testing.T) {
	var commits []geometry.Pixel
	c := NewController(func(p geometry.Pixel) { commits = append(commits, p) })

	container, image := testView()
	c.SetView(container, image)

	c.PointerMove(geometry.Vec{X: 400, Y: 300})

	assert.Nil(t, c.State().Marker)
	assert.Empty(t, commits)
}

func TestMarker_UnresolvedViewPlacesNothing(t *testing.T) {
	var commits []geometry.Pixel
	c := NewController(func(p geometry.Pixel) { commits = append(commits, p) })

	// Natural image size not known yet.
	c.SetView(geometry.Size{Width: 800, Height: 600}, nil)

	c.PointerDown(ButtonPrimary, geometry.Vec{X: 400, Y: 300})
	c.PointerUp()

	assert.Nil(t, c.State().Marker)
	assert.Empty(t, commits)
}

func TestController_SecondaryButtonNeverReachesMarker(t *testing.T) {
	var commits []geometry.Pixel
	c := NewController(func(p geometry.Pixel) { commits = append(commits, p) })

	container, image := testView()
	c.SetView(container, image)

	c.PointerDown(ButtonSecondary, geometry.Vec{X: 400, Y: 300})
	c.PointerMove(geometry.Vec{X: 500, Y: 300})
	c.PointerUp()

	state := c.State()
	assert.Nil(t, state.Marker)
	assert.Empty(t, commits)
	assert.Equal(t, geometry.Vec{X: 100, Y: 0}, state.Offset)
}

func TestController_WheelKeepsPixelUnderCursor(t *testing.T) {
	c := NewController(nil)

	container, image := testView()
	c.SetView(container, image)

	// Place the marker under the cursor, then zoom: its screen position
	// must not drift away from the cursor.
	cursor := geometry.Vec{X: 250, Y: 420}
	c.PointerDown(ButtonPrimary, cursor)
	c.PointerUp()

	before := c.State()
	require.NotNil(t, before.MarkerScreen)
	assert.InDelta(t, cursor.X, before.MarkerScreen.X, 1)
	assert.InDelta(t, cursor.Y, before.MarkerScreen.Y, 1)

	c.Wheel(-100, cursor)
	c.Wheel(-100, cursor)

	after := c.State()
	assert.Equal(t, 1.5, after.Zoom)
	require.NotNil(t, after.MarkerScreen)
	assert.InDelta(t, cursor.X, after.MarkerScreen.X, 2)
	assert.InDelta(t, cursor.Y, after.MarkerScreen.Y, 2)
}

func TestController_SwitchImage(t *testing.T) {
	c := NewController(nil)

	container, image := testView()
	c.SetView(container, image)

	c.SetZoom(3)
	c.PointerDown(ButtonSecondary, geometry.Vec{X: 0, Y: 0})
	c.PointerMove(geometry.Vec{X: 60, Y: 0})
	c.PointerUp()

	seed := &geometry.Pixel{X: 10, Y: 20}
	c.SwitchImage(image, seed)

	state := c.State()
	assert.Equal(t, MinZoom, state.Zoom)
	assert.Equal(t, geometry.Vec{}, state.Offset)
	require.NotNil(t, state.Marker)
	assert.Equal(t, geometry.Pixel{X: 10, Y: 20}, *state.Marker)

	// Switching to an entry without persisted coordinates clears the marker.
	c.SwitchImage(image, nil)
	assert.Nil(t, c.State().Marker)
}

func TestController_StateIncludesMarkerScreenPosition(t *testing.T) {
	c := NewController(nil)

	container, image := testView()
	c.SetView(container, image)
	c.SwitchImage(image, &geometry.Pixel{X: 200, Y: 150})

	state := c.State()
	require.NotNil(t, state.MarkerScreen)
	assert.InDelta(t, 400, state.MarkerScreen.X, 1e-9)
	assert.InDelta(t, 300, state.MarkerScreen.Y, 1e-9)
}

func TestController_StateOmitsScreenPositionWhenUnresolvable(t *testing.T) {
	c := NewController(nil)
	c.SwitchImage(nil, &geometry.Pixel{X: 5, Y: 5})

	state := c.State()
	require.NotNil(t, state.Marker)
	assert.Nil(t, state.MarkerScreen)
}

func TestController_ClearMarker(t *testing.T) {
	c := NewController(nil)

	container, image := testView()
	c.SetView(container, image)
	c.SwitchImage(image, &geometry.Pixel{X: 1, Y: 2})

	c.ClearMarker()
	assert.Nil(t, c.State().Marker)
}
