package selection

import (
	"log/slog"

	"github.com/soocke/rti-preview/domain/geometry"
)

// Machine owns the selection rectangle and turns pointer events into moves
// and resizes of it. It is not safe for concurrent use; drive it from the UI
// event thread.
type Machine struct {
	state     State
	rect      geometry.Rect
	visible   bool
	direction geometry.Edge
	dragX     int
	dragY     int
	margin    int
	logger    *slog.Logger
	actions   Callbacks
	listeners []StateListener
}

// NewMachine constructs an idle machine.
func NewMachine(opts Options, actions Callbacks, logger *slog.Logger) *Machine {
	if opts.CornerMargin <= 0 {
		opts.CornerMargin = DefaultOptions().CornerMargin
	}
	return &Machine{
		state:     StateIdle,
		rect:      opts.Initial,
		visible:   opts.InitialVisible,
		direction: geometry.EdgeN,
		margin:    opts.CornerMargin,
		logger:    logger,
		actions:   actions,
	}
}

// AddListener registers l for state transitions.
func (m *Machine) AddListener(l StateListener) { m.listeners = append(m.listeners, l) }

// SetCallbacks replaces the side effect callbacks.
func (m *Machine) SetCallbacks(c Callbacks) { m.actions = c }

// Current returns the interaction state.
func (m *Machine) Current() State { return m.state }

// Rect returns the stored rectangle, shown or not.
func (m *Machine) Rect() geometry.Rect { return m.rect }

// Visible reports whether the selection is shown.
func (m *Machine) Visible() bool { return m.visible }

// Direction is the edge or corner being resized, or the last one.
func (m *Machine) Direction() geometry.Edge { return m.direction }

// DragOffset is the pointer offset from the rectangle origin while dragging.
func (m *Machine) DragOffset() (dx, dy int) { return m.dragX, m.dragY }

// Selection returns the rectangle and whether it is shown.
func (m *Machine) Selection() (geometry.Rect, bool) { return m.rect, m.visible }

// SetRect replaces the rectangle and shows it.
func (m *Machine) SetRect(r geometry.Rect) {
	m.rect = r.Normalised()
	m.visible = true
	m.redraw()
}

// Hide clears the selection without touching the stored rectangle.
func (m *Machine) Hide() {
	if !m.visible {
		return
	}
	m.visible = false
	m.redraw()
}

// PointerDown handles a button press at (x, y). Presses outside Idle are
// ignored.
func (m *Machine) PointerDown(x, y int) {
	if m.state != StateIdle {
		return
	}
	if !m.visible {
		m.visible = true
		m.rect = geometry.NewRect(x, y, 1, 1)
		m.direction = geometry.EdgeSE
		m.dragX, m.dragY = 0, 0
		m.transition(StateResizing)
		m.redraw()
		return
	}
	if dir := m.rect.WhichCorner(m.margin, x, y); dir != geometry.EdgeNone {
		m.direction = dir
		cx, cy := m.rect.Corner(m.margin, dir).Centre()
		m.dragX, m.dragY = x-cx, y-cy
		m.transition(StateResizing)
		m.redraw()
		return
	}
	if m.rect.IncludesPoint(x, y) {
		m.dragX, m.dragY = x-m.rect.Left, y-m.rect.Top
		m.transition(StateDragging)
		m.redraw()
		return
	}
	m.visible = false
	m.redraw()
}

// PointerMove handles pointer motion at (x, y) on a w x h image.
func (m *Machine) PointerMove(x, y, w, h int) {
	switch m.state {
	case StateDragging:
		m.drag(x, y, w, h)
		m.redraw()
	case StateResizing:
		m.resize(x, y, w, h)
		m.redraw()
	case StateIdle:
		m.hover(x, y)
	}
}

// PointerUp ends any gesture.
func (m *Machine) PointerUp() { m.transition(StateIdle) }

func (m *Machine) drag(x, y, w, h int) {
	m.rect.Left = geometry.Clip(0, x-m.dragX, w-m.rect.Width)
	m.rect.Top = geometry.Clip(0, y-m.dragY, h-m.rect.Height)
	// A box wider than the image after a frame size change is cut down
	// rather than pushed past the right edge.
	m.rect = m.rect.Intersection(geometry.NewRect(0, 0, w, h))
}

func (m *Machine) resize(x, y, w, h int) {
	r := m.rect
	if m.direction.HasEast() {
		r.Width = (x - m.dragX) - r.Left
	}
	if m.direction.HasSouth() {
		r.Height = (y - m.dragY) - r.Top
	}
	if m.direction.HasWest() {
		left := x - m.dragX
		r.Width = r.Right() - left
		r.Left = left
	}
	if m.direction.HasNorth() {
		top := y - m.dragY
		r.Height = r.Bottom() - top
		r.Top = top
	}
	r.Normalise()
	m.rect = r.Intersection(geometry.NewRect(0, 0, w, h))
}

func (m *Machine) hover(x, y int) {
	if m.actions.SetCursor == nil {
		return
	}
	cursor := CursorDefault
	if m.visible {
		if dir := m.rect.WhichCorner(m.margin, x, y); dir != geometry.EdgeNone {
			cursor = CursorFor(dir)
		} else if m.rect.IncludesPoint(x, y) {
			cursor = CursorMove
		}
	}
	m.actions.SetCursor(cursor)
}

func (m *Machine) transition(next State) {
	prev := m.state
	if prev == next {
		return
	}
	m.state = next
	if m.logger != nil {
		m.logger.Debug("selection state transition", "from", prev.String(), "to", next.String(), "direction", m.direction.String())
	}
	for _, l := range m.listeners {
		l(prev, next)
	}
}

func (m *Machine) redraw() {
	if m.actions.Redraw != nil {
		m.actions.Redraw()
	}
}
