package model

import (
	"sync"
	"sync/atomic"
)

// LiveModel tracks whether live preview is on and the last error shown to
// the user. The zero value is off and usable.
// The flag is atomic because debug loggers read it off the UI thread.
type LiveModel struct {
	live atomic.Bool

	mu      sync.Mutex
	lastErr string
	fps     int
}

// Live reports whether live preview is on.
func (m *LiveModel) Live() bool {
	if m == nil {
		return false
	}
	return m.live.Load()
}

// SetLive stores the live flag. Turning live on clears the last error.
func (m *LiveModel) SetLive(b bool) {
	if m == nil {
		return
	}
	if m.live.Swap(b) == b {
		return
	}
	m.mu.Lock()
	if b {
		m.lastErr = ""
	} else {
		m.fps = 0
	}
	m.mu.Unlock()
}

// SetError records a user-visible error; an empty string clears it.
func (m *LiveModel) SetError(msg string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.lastErr = msg
	m.mu.Unlock()
}

// Error returns the last recorded error message.
func (m *LiveModel) Error() string {
	if m == nil {
		return ""
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// SetFPS stores the latest frame rate report.
func (m *LiveModel) SetFPS(fps int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.fps = fps
	m.mu.Unlock()
}

// FPS returns the latest frame rate report, zero while not live.
func (m *LiveModel) FPS() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fps
}
