package utils

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUtils_HexToRGBA(t *testing.T) {
	assert := assert.New(t)

	c, err := HexToRGBA("#ff8000")
	assert.NoError(err)
	assert.Equal(color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, c)

	c, err = HexToRGBA("00000080")
	assert.NoError(err)
	assert.Equal(color.NRGBA{A: 0x80}, c)

	_, err = HexToRGBA("#fff")
	assert.Error(err)
	_, err = HexToRGBA("#gg0000")
	assert.Error(err)
}

func TestUtils_FormatTime(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("1.50s", FormatTime(1500*time.Millisecond))
	assert.Equal("2m 5.00s", FormatTime(2*time.Minute+5*time.Second))
	assert.Equal("1h 1m 1.00s", FormatTime(time.Hour+time.Minute+time.Second))
}

func TestUtils_Math(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(float32(3), Abs(float32(-3)))
	assert.Equal(10, Clamp(12, 0, 10))
	assert.Equal(0, Clamp(-1, 0, 10))
	assert.Equal(4, Clamp(4, 0, 10))
	assert.True(Contains([]string{"jpg", "png"}, "png"))
	assert.False(Contains([]string{"jpg", "png"}, "gif"))
}
