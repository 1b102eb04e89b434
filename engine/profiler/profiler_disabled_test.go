//go:build !profile

package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisabledIsInert(t *testing.T) {
	assert.False(t, Enabled)
	Init(16)
	end := Start("editor.frame")
	assert.NotPanics(t, end)
	assert.NoError(t, Dump(t.TempDir()))
}
