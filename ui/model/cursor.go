package model

import "github.com/soocke/rti-preview/domain/selection"

// cursorNames maps selection cursors to X11/Tk cursor names.
var cursorNames = map[selection.Cursor]string{
	selection.CursorDefault:     "",
	selection.CursorMove:        "fleur",
	selection.CursorTopLeft:     "top_left_corner",
	selection.CursorTopRight:    "top_right_corner",
	selection.CursorBottomLeft:  "bottom_left_corner",
	selection.CursorBottomRight: "bottom_right_corner",
	selection.CursorTop:         "top_side",
	selection.CursorBottom:      "bottom_side",
	selection.CursorLeft:        "left_side",
	selection.CursorRight:       "right_side",
}

// CursorName returns the Tk -cursor value for c. The empty string restores
// the widget default.
func CursorName(c selection.Cursor) string { return cursorNames[c] }
