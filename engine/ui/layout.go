package ui

// layoutState stacks widgets top to bottom inside the screen rect.
type layoutState struct {
	area   Rect
	cursor Pos2
	clip   Rect
}

func (l *layoutState) reset(screen Rect, padding float32) {
	l.area = Rect{
		Min: Pos2{screen.Min.X + padding, screen.Min.Y + padding},
		Max: Pos2{screen.Max.X - padding, screen.Max.Y - padding},
	}
	l.cursor = l.area.Min
	l.clip = screen
}

// allocate reserves a row of the given height and returns its rect. A width
// of 0 fills the available width.
func (l *layoutState) allocate(width, height, spacing float32) Rect {
	if width <= 0 || width > l.area.Width() {
		width = max(l.area.Width(), 0)
	}
	r := RectFromMinSize(l.cursor, Vec2{width, height})
	l.cursor.Y += height + spacing
	return r
}
