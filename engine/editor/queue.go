package editor

import "github.com/zmann/noiseg8/engine/colors"

// Queue is handed to the build and update callbacks. It only lets the
// application change the background colour and ask for the window to close.
// A fresh Queue is created for every call; keeping it afterwards has no effect.
type Queue struct {
	bg    colors.Color
	close bool
}

// SetBgColor sets the colour the frame is cleared to.
func (q *Queue) SetBgColor(c colors.Color) { q.bg = c }

// BgColor returns the colour currently queued.
func (q *Queue) BgColor() colors.Color { return q.bg }

// CloseWindow asks for the window to close after this frame.
func (q *Queue) CloseWindow() { q.close = true }
