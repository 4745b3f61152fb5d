package vkng

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Window is a fixed-size SDL2 window with Vulkan support. It satisfies
// bootstrap.Window.
type Window struct {
	window *sdl.Window
}

func NewWindow(title string, width, height int32) (*Window, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, err
	}

	return &Window{window: window}, nil
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

// PollEvents drains the event queue and reports whether the window
// should keep running.
func (w *Window) PollEvents() bool {
	running := true
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch event.(type) {
		case *sdl.QuitEvent:
			running = false
		}
	}
	return running
}

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
