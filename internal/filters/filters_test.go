package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmp2hex/internal/bmp"
)

func TestInvert(t *testing.T) {
	b, err := bmp.New(11, 2)
	require.NoError(t, err)
	copy(b.Pix, []byte{0xB0, 0x21, 0xFF, 0xE0})

	Invert(b)
	// The low 5 bits of the second byte are past the width and keep their value
	assert.Equal(t, []byte{0x4F, 0xC1, 0x00, 0x00}, b.Pix)

	Invert(b)
	assert.Equal(t, []byte{0xB0, 0x21, 0xFF, 0xE0}, b.Pix)
}

func TestInvertFullBytes(t *testing.T) {
	b, err := bmp.New(16, 1)
	require.NoError(t, err)
	copy(b.Pix, []byte{0x0F, 0x00})

	Invert(b)
	assert.Equal(t, []byte{0xF0, 0xFF}, b.Pix)
}

func TestClearPadding(t *testing.T) {
	b, err := bmp.New(11, 2)
	require.NoError(t, err)
	copy(b.Pix, []byte{0xFF, 0xFF, 0x12, 0x3F})

	ClearPadding(b)
	assert.Equal(t, []byte{0xFF, 0xE0, 0x12, 0x20}, b.Pix)
}
