package view

import (
	"fmt"
	"time"

	"github.com/soocke/rti-preview/ui/model"
	"github.com/soocke/rti-preview/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows frame rate, selection readout, live session and errors.
type StatusBar interface {
	SetFPS(text string)
	SetSelection(text string)
	SetState(text string)
	SetSession(v model.SessionValues)
	ShowError(msg string)
}

type statusBar struct {
	fpsLbl     *TLabelWidget
	regionLbl  *TLabelWidget
	stateLbl   *TLabelWidget
	sessionLbl *TLabelWidget
	errorLbl   *TLabelWidget
}

// NewStatusBar creates the status labels in a frame gridded at row.
func NewStatusBar(row int) StatusBar {
	f := Frame()
	Grid(f, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	s := &statusBar{
		fpsLbl:     TLabel(Txt("FPS: 0"), Width(8), Style(theme.StyleStatusLabel)),
		regionLbl:  TLabel(Txt("Region: <none>"), Width(24), Style(theme.StyleStatusLabel)),
		stateLbl:   TLabel(Txt("Selection: idle"), Width(20), Style(theme.StyleStatusLabel)),
		sessionLbl: TLabel(Txt(formatSession(model.SessionValues{})), Width(36), Style(theme.StyleStatusLabel)),
		errorLbl:   TLabel(Style(theme.StyleErrorLabel)),
	}
	for i, l := range []*TLabelWidget{s.fpsLbl, s.regionLbl, s.stateLbl, s.sessionLbl} {
		Grid(l, In(f), Row(0), Column(i), Sticky("w"), Padx("0.2m"))
	}
	Grid(s.errorLbl, In(f), Row(1), Column(0), Columnspan(4), Sticky("w"), Padx("0.2m"))
	return s
}

func (s *statusBar) SetFPS(text string) {
	if s != nil && s.fpsLbl != nil {
		s.fpsLbl.Configure(Txt(text))
	}
}

func (s *statusBar) SetSelection(text string) {
	if s != nil && s.regionLbl != nil {
		s.regionLbl.Configure(Txt(text))
	}
}

func (s *statusBar) SetState(text string) {
	if s != nil && s.stateLbl != nil {
		s.stateLbl.Configure(Txt(text))
	}
}

// SetSession updates the live session readout.
func (s *statusBar) SetSession(v model.SessionValues) {
	if s == nil || s.sessionLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt(formatSession(v)))
}

// ShowError shows msg below the status line; an empty msg clears it.
func (s *statusBar) ShowError(msg string) {
	if s == nil || s.errorLbl == nil {
		return
	}
	s.errorLbl.Configure(Txt(msg))
}

func formatSession(v model.SessionValues) string {
	return fmt.Sprintf("Live: %s  Total: %s  Frames: %d", mmss(v.Session), mmss(v.Total), v.Frames)
}

func mmss(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
