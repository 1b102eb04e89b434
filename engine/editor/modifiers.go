package editor

import (
	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/ui"
)

// ModifierPolicy captures the platform differences in modifier and shortcut
// handling. One policy is chosen when the window opens.
type ModifierPolicy interface {
	// FromSnapshot overwrites mods with the platform's own modifier snapshot,
	// as carried by mouse events.
	FromSnapshot(snap core.Modifiers, mods *ui.Modifiers)
	// ApplyKey updates mods for a modifier key press or release. Other keys
	// leave mods untouched.
	ApplyKey(code core.Code, pressed bool, mods *ui.Modifiers)
	IsCut(mods ui.Modifiers, code core.Code) bool
	IsCopy(mods ui.Modifiers, code core.Code) bool
	IsPaste(mods ui.Modifiers, code core.Code) bool
	// InvertScrollX corrects a sign error in the native horizontal wheel delta.
	InvertScrollX() bool
}

// PolicyFor returns the policy for a platform family.
func PolicyFor(p core.Platform) ModifierPolicy {
	switch p {
	case core.PlatformMacOS:
		return MacPolicy{}
	case core.PlatformWindows:
		return WindowsPolicy{}
	default:
		return StandardPolicy{}
	}
}

// StandardPolicy is used on Linux and the BSDs: Ctrl is the command key.
type StandardPolicy struct{}

func (StandardPolicy) FromSnapshot(snap core.Modifiers, mods *ui.Modifiers) {
	mods.Alt = snap.Has(core.ModAlt)
	mods.Shift = snap.Has(core.ModShift)
	mods.Ctrl = snap.Has(core.ModControl)
	mods.Command = mods.Ctrl
	mods.MacCmd = false
}

func (StandardPolicy) ApplyKey(code core.Code, pressed bool, mods *ui.Modifiers) {
	switch code {
	case core.CodeShiftLeft, core.CodeShiftRight:
		mods.Shift = pressed
	case core.CodeControlLeft, core.CodeControlRight:
		mods.Ctrl = pressed
		mods.Command = pressed
	case core.CodeAltLeft, core.CodeAltRight:
		mods.Alt = pressed
	}
}

func (StandardPolicy) IsCut(m ui.Modifiers, c core.Code) bool   { return m.Command && c == core.CodeKeyX }
func (StandardPolicy) IsCopy(m ui.Modifiers, c core.Code) bool  { return m.Command && c == core.CodeKeyC }
func (StandardPolicy) IsPaste(m ui.Modifiers, c core.Code) bool { return m.Command && c == core.CodeKeyV }
func (StandardPolicy) InvertScrollX() bool                      { return false }

// WindowsPolicy adds the legacy Shift+Delete, Ctrl+Insert and Shift+Insert
// clipboard shortcuts.
type WindowsPolicy struct{ StandardPolicy }

func (p WindowsPolicy) IsCut(m ui.Modifiers, c core.Code) bool {
	return p.StandardPolicy.IsCut(m, c) || (m.Shift && c == core.CodeDelete)
}

func (p WindowsPolicy) IsCopy(m ui.Modifiers, c core.Code) bool {
	return p.StandardPolicy.IsCopy(m, c) || (m.Ctrl && c == core.CodeInsert)
}

func (p WindowsPolicy) IsPaste(m ui.Modifiers, c core.Code) bool {
	return p.StandardPolicy.IsPaste(m, c) || (m.Shift && c == core.CodeInsert)
}

// MacPolicy maps the Meta (Cmd) key to both MacCmd and Command; Ctrl is
// only Ctrl.
type MacPolicy struct{}

func (MacPolicy) FromSnapshot(snap core.Modifiers, mods *ui.Modifiers) {
	mods.Alt = snap.Has(core.ModAlt)
	mods.Shift = snap.Has(core.ModShift)
	mods.Ctrl = snap.Has(core.ModControl)
	mods.MacCmd = snap.Has(core.ModMeta)
	mods.Command = mods.MacCmd
}

func (MacPolicy) ApplyKey(code core.Code, pressed bool, mods *ui.Modifiers) {
	switch code {
	case core.CodeShiftLeft, core.CodeShiftRight:
		mods.Shift = pressed
	case core.CodeControlLeft, core.CodeControlRight:
		mods.Ctrl = pressed
	case core.CodeAltLeft, core.CodeAltRight:
		mods.Alt = pressed
	case core.CodeMetaLeft, core.CodeMetaRight:
		mods.MacCmd = pressed
		mods.Command = pressed
	}
}

func (MacPolicy) IsCut(m ui.Modifiers, c core.Code) bool   { return m.Command && c == core.CodeKeyX }
func (MacPolicy) IsCopy(m ui.Modifiers, c core.Code) bool  { return m.Command && c == core.CodeKeyC }
func (MacPolicy) IsPaste(m ui.Modifiers, c core.Code) bool { return m.Command && c == core.CodeKeyV }

// InvertScrollX is true: the native library reports horizontal wheel deltas
// with the wrong sign on macOS.
func (MacPolicy) InvertScrollX() bool { return true }
