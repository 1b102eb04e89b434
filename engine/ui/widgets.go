package ui

import (
	"fmt"
	"time"

	"github.com/zmann/noiseg8/engine/colors"
)

// Heading draws a larger line of text.
func (c *Context) Heading(text string) {
	c.labelScaled(text, c.style.TextScale*c.zoom*2)
}

// Label draws a line of text.
func (c *Context) Label(text string) {
	c.labelScaled(text, c.style.TextScale*c.zoom)
}

// Labelf is Label with fmt formatting.
func (c *Context) Labelf(format string, args ...any) {
	c.Label(fmt.Sprintf(format, args...))
}

func (c *Context) labelScaled(text string, scale float32) {
	size := c.atlas.measure(text, scale)
	r := c.layout.allocate(size.X, size.Y, c.style.Spacing)
	c.paint(c.layout.clip, TextShape{Pos: r.Min, Text: text, Color: c.style.TextColor, Scale: scale})
}

// Fill paints a solid background behind the whole screen.
func (c *Context) Fill(col colors.Color) {
	c.paint(c.layout.clip, RectShape{Rect: c.screen, Fill: col})
}

// Button returns true on the frame the primary button is released over a
// button that was pressed.
func (c *Context) Button(id int, text string) bool {
	scale := c.style.TextScale * c.zoom
	ts := c.atlas.measure(text, scale)
	pad := c.style.Padding
	r := c.layout.allocate(ts.X+2*pad, ts.Y+pad, c.style.Spacing)

	st, clicked := c.interact(id, r)
	bg := c.style.WidgetBg
	switch {
	case st.active:
		bg = c.style.WidgetActive
	case st.hot:
		bg = bg.Scale(1.2)
	}
	if st.hot {
		c.cursor = CursorIconPointingHand
	}
	c.paint(c.layout.clip, RectShape{Rect: r, Fill: bg})
	c.paint(r, TextShape{
		Pos:   Pos2{r.Min.X + pad, r.Min.Y + pad/2},
		Text:  text,
		Color: c.style.TextColor,
		Scale: scale,
	})
	return clicked
}

// Slider edits *value within [lo, hi] by dragging or scrolling. It returns
// true when the value changed.
func (c *Context) Slider(id int, text string, value *float32, lo, hi float32) bool {
	scale := c.style.TextScale * c.zoom
	lineH := c.atlas.lineHeight * scale
	r := c.layout.allocate(0, lineH+c.style.Padding, c.style.Spacing)

	st, _ := c.interact(id, r)
	old := *value
	if st.active && c.hasPointer && r.Width() > 0 {
		t := clampf((c.pointer.X-r.Min.X)/r.Width(), 0, 1)
		*value = lo + t*(hi-lo)
	} else if st.hot && c.scroll.Y != 0 {
		*value = clampf(*value+c.scroll.Y/500*(hi-lo), lo, hi)
	}
	if st.hot || st.active {
		c.cursor = CursorIconResizeHorizontal
	}

	frac := float32(0)
	if hi > lo {
		frac = clampf((*value-lo)/(hi-lo), 0, 1)
	}
	fill := RectFromMinSize(r.Min, Vec2{r.Width() * frac, r.Height()})
	c.paint(c.layout.clip, RectShape{Rect: r, Fill: c.style.WidgetBg})
	c.paint(c.layout.clip, RectShape{Rect: fill, Fill: c.style.Accent})
	c.paint(r, TextShape{
		Pos:   Pos2{r.Min.X + c.style.Padding/2, r.Min.Y + c.style.Padding/2},
		Text:  text,
		Color: c.style.TextColor,
		Scale: scale,
	})
	return *value != old
}

// Meter draws a horizontal level bar; frac is clamped to [0, 1].
func (c *Context) Meter(frac float32, col colors.Color) {
	r := c.layout.allocate(0, 10, c.style.Spacing)
	frac = clampf(frac, 0, 1)
	c.paint(c.layout.clip, RectShape{Rect: r, Fill: c.style.WidgetBg})
	c.paint(c.layout.clip, RectShape{Rect: RectFromMinSize(r.Min, Vec2{r.Width() * frac, r.Height()}), Fill: col})
}

// TextEdit is a single-line editor bound to *text. Clicking focuses it; typed
// text, paste, copy, cut and backspace apply while focused. Returns true when
// the text changed.
func (c *Context) TextEdit(id int, text *string) bool {
	scale := c.style.TextScale * c.zoom
	lineH := c.atlas.lineHeight * scale
	r := c.layout.allocate(0, lineH+c.style.Padding, c.style.Spacing)

	st, _ := c.interact(id, r)
	if c.pressed {
		if st.hot {
			c.focusedWidget = id
		} else if c.focusedWidget == id {
			c.focusedWidget = -1
		}
	}
	if st.hot {
		c.cursor = CursorIconText
	}

	old := *text
	focused := c.focusedWidget == id && c.focusedWindow
	if focused {
		for _, ev := range c.events {
			switch e := ev.(type) {
			case EventText:
				*text += e.Text
			case EventCopy:
				c.copied = *text
			case EventCut:
				c.copied = *text
				*text = ""
			case EventKey:
				if e.Pressed && e.Key == KeyBackspace && len(*text) > 0 {
					rs := []rune(*text)
					*text = string(rs[:len(rs)-1])
				}
				if e.Pressed && e.Key == KeyEscape {
					c.focusedWidget = -1
				}
			}
		}
	}

	bg := c.style.WidgetBg
	if focused {
		bg = c.style.WidgetActive
	}
	c.paint(c.layout.clip, RectShape{Rect: r, Fill: bg})
	shown := *text
	if focused && int(c.time*2)%2 == 0 {
		shown += "|"
	}
	c.paint(r, TextShape{
		Pos:   Pos2{r.Min.X + c.style.Padding/2, r.Min.Y + c.style.Padding/2},
		Text:  shown,
		Color: c.style.TextColor,
		Scale: scale,
	})
	if focused {
		// Keep the caret blinking.
		c.RequestRepaintAfter(500 * time.Millisecond)
	}
	return *text != old
}

// interact updates hot/active state for a widget occupying r.
func (c *Context) interact(id int, r Rect) (widgetState, bool) {
	st := c.state[id]
	hot := c.hasPointer && r.Contains(c.pointer)
	clicked := false
	if c.pressed && hot {
		st.active = true
	}
	if c.released {
		if st.active && hot {
			clicked = true
		}
		st.active = false
	}
	st.hot = hot
	c.state[id] = st
	return st, clicked
}
