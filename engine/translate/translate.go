// Package translate maps native input identifiers onto the UI engine's
// vocabulary. Every function is pure; anything without a mapping reports
// ok == false and the caller drops the event.
package translate

import (
	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/ui"
)

// Button maps left, right and middle; back/forward and others are dropped.
func Button(b core.MouseButton) (ui.PointerButton, bool) {
	switch b {
	case core.MouseLeft:
		return ui.PointerPrimary, true
	case core.MouseRight:
		return ui.PointerSecondary, true
	case core.MouseMiddle:
		return ui.PointerMiddle, true
	default:
		return 0, false
	}
}

var namedKeys = map[core.NamedKey]ui.Key{
	core.KeyArrowDown:  ui.KeyArrowDown,
	core.KeyArrowLeft:  ui.KeyArrowLeft,
	core.KeyArrowRight: ui.KeyArrowRight,
	core.KeyArrowUp:    ui.KeyArrowUp,
	core.KeyEscape:     ui.KeyEscape,
	core.KeyTab:        ui.KeyTab,
	core.KeyBackspace:  ui.KeyBackspace,
	core.KeyEnter:      ui.KeyEnter,
	core.KeyInsert:     ui.KeyInsert,
	core.KeyDelete:     ui.KeyDelete,
	core.KeyHome:       ui.KeyHome,
	core.KeyEnd:        ui.KeyEnd,
	core.KeyPageUp:     ui.KeyPageUp,
	core.KeyPageDown:   ui.KeyPageDown,
}

// Key maps named keys directly. A character key maps only when its text is
// exactly one of a-z, 0-9 or space.
func Key(k core.Key) (ui.Key, bool) {
	if k.Name != core.KeyCharacter {
		key, ok := namedKeys[k.Name]
		return key, ok
	}
	if len(k.Char) != 1 {
		return 0, false
	}
	switch c := k.Char[0]; {
	case c == ' ':
		return ui.KeySpace, true
	case c >= '0' && c <= '9':
		return ui.KeyNum0 + ui.Key(c-'0'), true
	case c >= 'a' && c <= 'z':
		return ui.KeyA + ui.Key(c-'a'), true
	default:
		return 0, false
	}
}

// Cursor maps every engine cursor to the closest native shape.
func Cursor(c ui.CursorIcon) core.MouseCursor {
	switch c {
	case ui.CursorIconDefault:
		return core.CursorDefault
	case ui.CursorIconNone:
		return core.CursorHidden
	case ui.CursorIconContextMenu:
		// No native context-menu arrow; the hand reads as "clickable".
		return core.CursorHand
	case ui.CursorIconHelp:
		return core.CursorHelp
	case ui.CursorIconPointingHand:
		return core.CursorHand
	case ui.CursorIconProgress:
		// Arrow with a spinner: pointer stays usable.
		return core.CursorPtrWorking
	case ui.CursorIconWait:
		return core.CursorWorking
	case ui.CursorIconCell:
		return core.CursorCell
	case ui.CursorIconCrosshair:
		return core.CursorCrosshair
	case ui.CursorIconText:
		return core.CursorText
	case ui.CursorIconVerticalText:
		return core.CursorVerticalText
	case ui.CursorIconAlias:
		return core.CursorAlias
	case ui.CursorIconCopy:
		return core.CursorCopy
	case ui.CursorIconMove:
		return core.CursorMove
	case ui.CursorIconNoDrop:
		// Dropping is "not allowed" as far as the native set can tell.
		return core.CursorNotAllowed
	case ui.CursorIconNotAllowed:
		return core.CursorNotAllowed
	case ui.CursorIconGrab:
		// Open hand has no native shape; the pointing hand is closest.
		return core.CursorHand
	case ui.CursorIconGrabbing:
		return core.CursorHandGrabbing
	case ui.CursorIconAllScroll:
		return core.CursorAllScroll
	case ui.CursorIconResizeHorizontal:
		return core.CursorEwResize
	case ui.CursorIconResizeNeSw:
		return core.CursorNeswResize
	case ui.CursorIconResizeNwSe:
		return core.CursorNwseResize
	case ui.CursorIconResizeVertical:
		return core.CursorNsResize
	case ui.CursorIconResizeEast:
		return core.CursorEResize
	case ui.CursorIconResizeSouthEast:
		return core.CursorSeResize
	case ui.CursorIconResizeSouth:
		return core.CursorSResize
	case ui.CursorIconResizeSouthWest:
		return core.CursorSwResize
	case ui.CursorIconResizeWest:
		return core.CursorWResize
	case ui.CursorIconResizeNorthWest:
		return core.CursorNwResize
	case ui.CursorIconResizeNorth:
		return core.CursorNResize
	case ui.CursorIconResizeNorthEast:
		return core.CursorNeResize
	case ui.CursorIconResizeColumn:
		return core.CursorColResize
	case ui.CursorIconResizeRow:
		return core.CursorRowResize
	case ui.CursorIconZoomIn:
		return core.CursorZoomIn
	case ui.CursorIconZoomOut:
		return core.CursorZoomOut
	default:
		return core.CursorDefault
	}
}
