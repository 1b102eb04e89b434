package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, [4]uint8{255, 128, 0, 255}, c.RGBA8())

	c, err = ParseHex("#00000080")
	require.NoError(t, err)
	assert.InDelta(t, 128.0/255, c.A(), 1e-6)

	for _, bad := range []string{"", "ff8000", "#ff80", "#gg0000"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestPremultiplied(t *testing.T) {
	c := Color{1, 0.5, 0.2, 0.5}.Premultiplied()
	assert.Equal(t, Color{0.5, 0.25, 0.1, 0.5}, c)
}

func TestScaleClamps(t *testing.T) {
	c := Color{0.6, 0.2, 0, 0.4}.Scale(2)
	assert.Equal(t, Color{1, 0.4, 0, 0.4}, c)
}
