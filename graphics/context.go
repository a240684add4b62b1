// Package graphics defines the context abstraction shared by the windowed
// and headless backends. Every GL call in this module assumes the calling
// thread holds a current context; contexts are thread-affine and never
// shared between goroutines.
package graphics

// Context is an OpenGL rendering context together with its drawable surface.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
}
