package model

import (
	"github.com/soocke/rti-preview/domain/geometry"
)

// SelectionModel holds the last reflected normalized selection. The zero value
// means no selection and is usable. Updates happen on the UI thread tick.
type SelectionModel struct {
	rect    geometry.Rect
	visible bool
}

func NewSelectionModel() *SelectionModel { return &SelectionModel{} }

// Set stores the selection and reports whether it differs from the previous one.
func (m *SelectionModel) Set(r geometry.Rect, visible bool) bool {
	if m == nil {
		return false
	}
	if !visible {
		r = geometry.Rect{}
	}
	if r == m.rect && visible == m.visible {
		return false
	}
	m.rect, m.visible = r, visible
	return true
}

// Selection returns the stored rectangle and whether one is shown.
func (m *SelectionModel) Selection() (geometry.Rect, bool) {
	if m == nil {
		return geometry.Rect{}, false
	}
	return m.rect, m.visible
}
