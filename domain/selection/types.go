package selection

import "github.com/soocke/rti-preview/domain/geometry"

// State enumerates the interaction states of the selection box.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateResizing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	default:
		return "unknown"
	}
}

// Cursor is an abstract pointer shape hint. Views map it to whatever their
// toolkit provides.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorTopLeft
	CursorTopRight
	CursorBottomLeft
	CursorBottomRight
	CursorTop
	CursorBottom
	CursorLeft
	CursorRight
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorMove:
		return "move"
	case CursorTopLeft:
		return "top_left"
	case CursorTopRight:
		return "top_right"
	case CursorBottomLeft:
		return "bottom_left"
	case CursorBottomRight:
		return "bottom_right"
	case CursorTop:
		return "top"
	case CursorBottom:
		return "bottom"
	case CursorLeft:
		return "left"
	case CursorRight:
		return "right"
	default:
		return "unknown"
	}
}

// CursorFor returns the resize cursor for an edge, or CursorDefault for
// EdgeNone.
func CursorFor(e geometry.Edge) Cursor {
	switch e {
	case geometry.EdgeNW:
		return CursorTopLeft
	case geometry.EdgeNE:
		return CursorTopRight
	case geometry.EdgeSW:
		return CursorBottomLeft
	case geometry.EdgeSE:
		return CursorBottomRight
	case geometry.EdgeN:
		return CursorTop
	case geometry.EdgeS:
		return CursorBottom
	case geometry.EdgeW:
		return CursorLeft
	case geometry.EdgeE:
		return CursorRight
	default:
		return CursorDefault
	}
}

// Callbacks externalize the side effects of the machine. Nil fields are
// skipped.
type Callbacks struct {
	Redraw    func()
	SetCursor func(Cursor)
}

// StateListener is called on each state change.
type StateListener func(prev, next State)

// Options configures a Machine.
type Options struct {
	// CornerMargin is the side of the square hit box around each handle.
	CornerMargin int
	// Initial is the starting rectangle, shown when InitialVisible is set.
	Initial        geometry.Rect
	InitialVisible bool
}

// DefaultOptions matches the preview widget defaults: 15px handles and a
// visible 100x100 box at (10,10).
func DefaultOptions() Options {
	return Options{CornerMargin: 15, Initial: geometry.NewRect(10, 10, 100, 100), InitialVisible: true}
}
