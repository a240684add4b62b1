//go:build !linux

package headless

import (
	"fmt"

	"github.com/shadeforge/glkit/graphics"
)

// New is unavailable off Linux; use glcontext with a hidden window instead.
func New(width, height int) (graphics.Context, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
