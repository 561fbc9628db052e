package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPainter(t *testing.T) {
	plain := NewPainter(false)
	assert.Equal(t, "x", plain.Red("x"))
	assert.Equal(t, "x", plain.Bold(ColorCodeCyan, "x"))
	assert.Equal(t, "[-a-]{+b+}", plain.Removed("a")+plain.Added("b"))

	colored := NewPainter(true)
	assert.Equal(t, ColorCodeGreen+"ok"+ColorCodeReset, colored.Green("ok"))
	assert.Equal(t, ColorCodeBgRed+"a"+ColorCodeReset, colored.Removed("a"))
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, Enabled(&buf, false))
	assert.False(t, Enabled(&buf, true))
}
