package quill

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorBlack is the default fill and stroke color of a fresh render state.
	ColorBlack = Color{0, 0, 0, 1}
	// ColorWhite is opaque white.
	ColorWhite = Color{1, 1, 1, 1}
)

// WithAlpha returns c with its alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeShape NodeType = iota // vector graphics from a command buffer; also used as a plain container
	NodeTypeText                  // text rasterized to a texture and drawn as a quad
)

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventMouseMove  EventType = iota // pointer moved over the stage
	EventMouseDown                   // a button was pressed
	EventMouseUp                     // a button was released
	EventClick                       // press then release over the same node
	EventMouseOver                   // pointer entered a node
	EventMouseOut                    // pointer left a node
	EventMouseLeave                  // pointer left the stage surface
	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventMouseMove:  "mousemove",
	EventMouseDown:  "mousedown",
	EventMouseUp:    "mouseup",
	EventClick:      "click",
	EventMouseOver:  "mouseover",
	EventMouseOut:   "mouseout",
	EventMouseLeave: "mouseleave",
}

// String returns the DOM-style name of the event type.
func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TextAlign controls horizontal text alignment relative to a text node's origin.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // origin at the left edge (default)
	TextAlignCenter                  // origin at the horizontal center
	TextAlignRight                   // origin at the right edge
)
