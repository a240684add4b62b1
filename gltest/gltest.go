// Package gltest acquires OpenGL contexts for tests. Tests needing a live
// context skip on machines without a usable GPU or display.
package gltest

import (
	"runtime"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/shadeforge/glkit/glcontext"
	"github.com/shadeforge/glkit/graphics"
	"github.com/shadeforge/glkit/headless"
)

// NewContext makes a GL 4.1 context current on the test's thread, preferring
// a display-less EGL context and falling back to a hidden GLFW window. The
// context is released when the test finishes.
func NewContext(t *testing.T) graphics.Context {
	t.Helper()
	runtime.LockOSThread()

	if ctx, err := headless.New(64, 64); err == nil {
		if err := gl.Init(); err == nil {
			t.Cleanup(ctx.Shutdown)
			return ctx
		}
		ctx.Shutdown()
	}

	if err := glcontext.Init(); err != nil {
		t.Skipf("no GL context available: %v", err)
	}
	ctx, err := glcontext.New(64, 64, "glkit test", false)
	if err != nil {
		t.Skipf("no GL context available: %v", err)
	}
	ctx.MakeCurrent()
	if err := gl.Init(); err != nil {
		ctx.Shutdown()
		t.Skipf("loading GL entry points: %v", err)
	}
	t.Cleanup(ctx.Shutdown)
	return ctx
}
