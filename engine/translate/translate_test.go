package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/ui"
)

func TestButton(t *testing.T) {
	cases := map[core.MouseButton]ui.PointerButton{
		core.MouseLeft:   ui.PointerPrimary,
		core.MouseRight:  ui.PointerSecondary,
		core.MouseMiddle: ui.PointerMiddle,
	}
	for in, want := range cases {
		got, ok := Button(in)
		require.True(t, ok, "button %d", in)
		assert.Equal(t, want, got)
	}
	for _, in := range []core.MouseButton{core.MouseBack, core.MouseForward, core.MouseOther} {
		_, ok := Button(in)
		assert.False(t, ok, "button %d should be dropped", in)
	}
}

func TestKeyNamed(t *testing.T) {
	for in, want := range namedKeys {
		got, ok := Key(core.Named(in))
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, in := range []core.NamedKey{core.KeyUnidentified, core.KeyShift, core.KeyMeta, core.KeyF5} {
		_, ok := Key(core.Named(in))
		assert.False(t, ok, "named key %d should be dropped", in)
	}
}

func TestKeyCharactersMapExactlyOnce(t *testing.T) {
	seen := map[ui.Key]string{}
	check := func(s string, want ui.Key) {
		got, ok := Key(core.Character(s))
		require.True(t, ok, "%q", s)
		assert.Equal(t, want, got, "%q", s)
		prev, dup := seen[got]
		assert.False(t, dup, "%q and %q map to the same key", s, prev)
		seen[got] = s
	}
	check(" ", ui.KeySpace)
	check("0", ui.KeyNum0)
	check("9", ui.KeyNum9)
	for c := 'a'; c <= 'z'; c++ {
		check(string(c), ui.KeyA+ui.Key(c-'a'))
	}
	for c := '1'; c <= '8'; c++ {
		check(string(c), ui.KeyNum0+ui.Key(c-'0'))
	}
	assert.Len(t, seen, 37)
}

func TestKeyCharactersOutsideSetAreDropped(t *testing.T) {
	for _, s := range []string{"", "A", "Z", "ab", "é", "ß", "!", "\t", "11", "日"} {
		_, ok := Key(core.Character(s))
		assert.False(t, ok, "%q should be dropped", s)
		// Deterministic: asking twice gives the same answer.
		_, ok = Key(core.Character(s))
		assert.False(t, ok)
	}
}

func TestCursorIsTotal(t *testing.T) {
	icons := ui.AllCursorIcons()
	require.Len(t, icons, 35)
	for _, icon := range icons {
		got := Cursor(icon)
		if icon != ui.CursorIconDefault {
			assert.NotEqual(t, core.CursorDefault, got, "icon %d fell through to default", icon)
		}
	}
}

func TestCursorManyToOne(t *testing.T) {
	assert.Equal(t, core.CursorHand, Cursor(ui.CursorIconPointingHand))
	assert.Equal(t, core.CursorHand, Cursor(ui.CursorIconGrab))
	assert.Equal(t, core.CursorHand, Cursor(ui.CursorIconContextMenu))
	assert.Equal(t, core.CursorNotAllowed, Cursor(ui.CursorIconNoDrop))
	assert.Equal(t, core.CursorHidden, Cursor(ui.CursorIconNone))
}
