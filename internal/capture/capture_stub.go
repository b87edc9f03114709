//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package capture

import "image"

// Screen is unavailable on platforms without an X11 backend.
func Screen() (*image.RGBA, error) {
	return nil, ErrUnsupported
}
