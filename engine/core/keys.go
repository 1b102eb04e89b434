package core

// NamedKey identifies non-printing logical keys. KeyCharacter means the key
// produced text, held in Key.Char.
type NamedKey int

const (
	KeyUnidentified NamedKey = iota
	KeyCharacter
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Key is the logical key of a keyboard event.
type Key struct {
	Name NamedKey
	Char string // set when Name == KeyCharacter
}

func Named(n NamedKey) Key { return Key{Name: n} }

func Character(s string) Key { return Key{Name: KeyCharacter, Char: s} }

// Code is the physical key position, independent of layout.
type Code int

const (
	CodeUnidentified Code = iota
	CodeShiftLeft
	CodeShiftRight
	CodeControlLeft
	CodeControlRight
	CodeAltLeft
	CodeAltRight
	CodeMetaLeft
	CodeMetaRight
	CodeKeyA
	CodeKeyB
	CodeKeyC
	CodeKeyD
	CodeKeyE
	CodeKeyF
	CodeKeyG
	CodeKeyH
	CodeKeyI
	CodeKeyJ
	CodeKeyK
	CodeKeyL
	CodeKeyM
	CodeKeyN
	CodeKeyO
	CodeKeyP
	CodeKeyQ
	CodeKeyR
	CodeKeyS
	CodeKeyT
	CodeKeyU
	CodeKeyV
	CodeKeyW
	CodeKeyX
	CodeKeyY
	CodeKeyZ
	CodeDigit0
	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDigit4
	CodeDigit5
	CodeDigit6
	CodeDigit7
	CodeDigit8
	CodeDigit9
	CodeSpace
	CodeEnter
	CodeTab
	CodeBackspace
	CodeEscape
	CodeInsert
	CodeDelete
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeArrowUp
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeCapsLock
	CodeF1
	CodeF2
	CodeF3
	CodeF4
	CodeF5
	CodeF6
	CodeF7
	CodeF8
	CodeF9
	CodeF10
	CodeF11
	CodeF12
	CodeMinus
	CodeEqual
	CodeComma
	CodePeriod
	CodeSlash
	CodeSemicolon
	CodeQuote
	CodeBracketLeft
	CodeBracketRight
	CodeBackslash
	CodeBackquote
)

// Modifiers is a snapshot of held modifier keys as reported by the platform.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

func (m Modifiers) Has(mod Modifiers) bool { return m&mod != 0 }

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
	MouseOther
)

// MouseCursor is the set of cursor shapes the native layer can show.
type MouseCursor int

const (
	CursorDefault MouseCursor = iota
	CursorHidden
	CursorHand
	CursorHandGrabbing
	CursorHelp
	CursorText
	CursorVerticalText
	CursorWorking
	CursorPtrWorking
	CursorNotAllowed
	CursorPtrNotAllowed
	CursorZoomIn
	CursorZoomOut
	CursorAlias
	CursorCopy
	CursorMove
	CursorAllScroll
	CursorCell
	CursorCrosshair
	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize
)
