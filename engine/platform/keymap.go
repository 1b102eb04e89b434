package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/zmann/noiseg8/engine/core"
)

var codes = map[glfw.Key]core.Code{
	glfw.KeyLeftShift:    core.CodeShiftLeft,
	glfw.KeyRightShift:   core.CodeShiftRight,
	glfw.KeyLeftControl:  core.CodeControlLeft,
	glfw.KeyRightControl: core.CodeControlRight,
	glfw.KeyLeftAlt:      core.CodeAltLeft,
	glfw.KeyRightAlt:     core.CodeAltRight,
	glfw.KeyLeftSuper:    core.CodeMetaLeft,
	glfw.KeyRightSuper:   core.CodeMetaRight,

	glfw.KeySpace:     core.CodeSpace,
	glfw.KeyEnter:     core.CodeEnter,
	glfw.KeyKPEnter:   core.CodeEnter,
	glfw.KeyTab:       core.CodeTab,
	glfw.KeyBackspace: core.CodeBackspace,
	glfw.KeyEscape:    core.CodeEscape,
	glfw.KeyInsert:    core.CodeInsert,
	glfw.KeyDelete:    core.CodeDelete,
	glfw.KeyHome:      core.CodeHome,
	glfw.KeyEnd:       core.CodeEnd,
	glfw.KeyPageUp:    core.CodePageUp,
	glfw.KeyPageDown:  core.CodePageDown,
	glfw.KeyUp:        core.CodeArrowUp,
	glfw.KeyDown:      core.CodeArrowDown,
	glfw.KeyLeft:      core.CodeArrowLeft,
	glfw.KeyRight:     core.CodeArrowRight,
	glfw.KeyCapsLock:  core.CodeCapsLock,

	glfw.KeyMinus:        core.CodeMinus,
	glfw.KeyEqual:        core.CodeEqual,
	glfw.KeyComma:        core.CodeComma,
	glfw.KeyPeriod:       core.CodePeriod,
	glfw.KeySlash:        core.CodeSlash,
	glfw.KeySemicolon:    core.CodeSemicolon,
	glfw.KeyApostrophe:   core.CodeQuote,
	glfw.KeyLeftBracket:  core.CodeBracketLeft,
	glfw.KeyRightBracket: core.CodeBracketRight,
	glfw.KeyBackslash:    core.CodeBackslash,
	glfw.KeyGraveAccent:  core.CodeBackquote,
}

var namedByCode = map[core.Code]core.NamedKey{
	core.CodeShiftLeft:    core.KeyShift,
	core.CodeShiftRight:   core.KeyShift,
	core.CodeControlLeft:  core.KeyControl,
	core.CodeControlRight: core.KeyControl,
	core.CodeAltLeft:      core.KeyAlt,
	core.CodeAltRight:     core.KeyAlt,
	core.CodeMetaLeft:     core.KeyMeta,
	core.CodeMetaRight:    core.KeyMeta,
	core.CodeEnter:        core.KeyEnter,
	core.CodeTab:          core.KeyTab,
	core.CodeBackspace:    core.KeyBackspace,
	core.CodeEscape:       core.KeyEscape,
	core.CodeInsert:       core.KeyInsert,
	core.CodeDelete:       core.KeyDelete,
	core.CodeHome:         core.KeyHome,
	core.CodeEnd:          core.KeyEnd,
	core.CodePageUp:       core.KeyPageUp,
	core.CodePageDown:     core.KeyPageDown,
	core.CodeArrowUp:      core.KeyArrowUp,
	core.CodeArrowDown:    core.KeyArrowDown,
	core.CodeArrowLeft:    core.KeyArrowLeft,
	core.CodeArrowRight:   core.KeyArrowRight,
	core.CodeCapsLock:     core.KeyCapsLock,
}

// translateCode maps a GLFW key to its physical position.
func translateCode(k glfw.Key) core.Code {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return core.CodeKeyA + core.Code(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return core.CodeDigit0 + core.Code(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return core.CodeF1 + core.Code(k-glfw.KeyF1)
	}
	if c, ok := codes[k]; ok {
		return c
	}
	return core.CodeUnidentified
}

// namedKey returns the logical key for codes that never produce text.
func namedKey(c core.Code) (core.NamedKey, bool) {
	if c >= core.CodeF1 && c <= core.CodeF12 {
		return core.KeyF1 + core.NamedKey(c-core.CodeF1), true
	}
	n, ok := namedByCode[c]
	return n, ok
}

// fallbackChar is the unshifted US-layout text of a printable code, used
// when the platform has no name for the key.
func fallbackChar(c core.Code) string {
	switch {
	case c >= core.CodeKeyA && c <= core.CodeKeyZ:
		return string(rune('a' + (c - core.CodeKeyA)))
	case c >= core.CodeDigit0 && c <= core.CodeDigit9:
		return string(rune('0' + (c - core.CodeDigit0)))
	}
	switch c {
	case core.CodeSpace:
		return " "
	case core.CodeMinus:
		return "-"
	case core.CodeEqual:
		return "="
	case core.CodeComma:
		return ","
	case core.CodePeriod:
		return "."
	case core.CodeSlash:
		return "/"
	case core.CodeSemicolon:
		return ";"
	case core.CodeQuote:
		return "'"
	case core.CodeBracketLeft:
		return "["
	case core.CodeBracketRight:
		return "]"
	case core.CodeBackslash:
		return `\`
	case core.CodeBackquote:
		return "`"
	}
	return ""
}

func translateMods(m glfw.ModifierKey) core.Modifiers {
	var out core.Modifiers
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModControl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModMeta
	}
	return out
}

func translateButton(b glfw.MouseButton) core.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft
	case glfw.MouseButtonRight:
		return core.MouseRight
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle
	case glfw.MouseButton4:
		return core.MouseBack
	case glfw.MouseButton5:
		return core.MouseForward
	default:
		return core.MouseOther
	}
}

// standardCursor picks the closest of GLFW 3.3's six standard shapes.
func standardCursor(c core.MouseCursor) glfw.StandardCursor {
	switch c {
	case core.CursorText, core.CursorVerticalText:
		return glfw.IBeamCursor
	case core.CursorCrosshair, core.CursorCell:
		return glfw.CrosshairCursor
	case core.CursorHand, core.CursorHandGrabbing, core.CursorMove, core.CursorAllScroll:
		return glfw.HandCursor
	case core.CursorEResize, core.CursorWResize, core.CursorEwResize, core.CursorColResize:
		return glfw.HResizeCursor
	case core.CursorNResize, core.CursorSResize, core.CursorNsResize, core.CursorRowResize:
		return glfw.VResizeCursor
	default:
		return glfw.ArrowCursor
	}
}
