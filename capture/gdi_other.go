//go:build !windows

package capture

import "image"

// GrabGDI is only available on Windows.
func GrabGDI(image.Rectangle) (*image.RGBA, error) { return nil, ErrUnsupported }
