// Package capture grabs the screen contents to seed an editing session.
package capture

import "errors"

// ErrUnsupported is returned when no capture backend exists for the platform.
var ErrUnsupported = errors.New("screen capture is not supported on this platform")
