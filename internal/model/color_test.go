package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorLerp(t *testing.T) {
	from := RGB(230, 25, 75)
	to := RGB(60, 180, 75)

	assert.Equal(t, from, from.Lerp(to, 0))
	assert.Equal(t, to, from.Lerp(to, 1))

	// 230 + (60-230)*0.5 = 145, 25 + 155*0.5 = 102.5 -> 102
	assert.Equal(t, RGB(145, 102, 75), from.Lerp(to, 0.5))

	// Out-of-range progress is clamped.
	assert.Equal(t, from, from.Lerp(to, -1))
	assert.Equal(t, to, from.Lerp(to, 2))
}

func TestColorLerpTruncates(t *testing.T) {
	// 0 + 255*0.999 = 254.745 -> 254
	assert.Equal(t, RGB(254, 0, 0), RGB(0, 0, 0).Lerp(RGB(255, 0, 0), 0.999))
	// 255 - 255*0.001 = 254.745 -> 254
	assert.Equal(t, RGB(254, 0, 0), RGB(255, 0, 0).Lerp(RGB(0, 0, 0), 0.001))
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#e6194b", RGB(230, 25, 75).Hex())
	assert.Equal(t, "#000000", Black.Hex())
	assert.Equal(t, "#ffffff", White.Hex())
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 128, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#0082c8")
	require.NoError(t, err)
	assert.Equal(t, RGB(0, 130, 200), c)

	_, err = ParseHex("blue")
	assert.Error(t, err)
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	require.Len(t, p, 22)
	assert.Equal(t, RGB(230, 25, 75), p[0])
	assert.Equal(t, RGB(0, 0, 0), p[21])

	// Callers get their own copy.
	p[0] = White
	assert.Equal(t, RGB(230, 25, 75), DefaultPalette()[0])
}

func TestPaletteAtCycles(t *testing.T) {
	p := DefaultPalette()
	for i := 0; i < 3*len(p); i++ {
		assert.Equal(t, p[i%len(p)], p.At(i), "index %d", i)
	}
	assert.Equal(t, p[21], p.At(-1))
	assert.Equal(t, Black, Palette(nil).At(3))
}
