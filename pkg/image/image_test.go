package image

import (
	stdimage "image"
	"image/color"
	"testing"

	"blindsteg/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesPixelBuffer(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		format PixelFormat
		pix    []byte
		ok     bool
	}{
		{name: "rgb", width: 2, height: 2, format: RGB8, pix: make([]byte, 12), ok: true},
		{name: "rgba", width: 2, height: 2, format: RGBA8, pix: make([]byte, 16), ok: true},
		{name: "empty", width: 0, height: 0, format: RGB8, pix: nil, ok: true},
		{name: "short buffer", width: 2, height: 2, format: RGBA8, pix: make([]byte, 12)},
		{name: "unknown format", width: 1, height: 1, format: PixelFormat(2), pix: make([]byte, 2)},
		{name: "negative dimensions", width: -1, height: 2, format: RGB8, pix: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(tt.width, tt.height, tt.format, tt.pix)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidPixelBuffer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width*tt.height, img.PixelCount())
		})
	}
}

func TestFromImagePicksPixelFormat(t *testing.T) {
	opaque := generateImage(4, 3, false)
	assert.Equal(t, RGB8, opaque.Format())
	assert.Len(t, opaque.Pix(), 4*3*3)

	translucent := generateImage(4, 3, true)
	assert.Equal(t, RGBA8, translucent.Format())
	assert.Len(t, translucent.Pix(), 4*3*4)
}

func TestFromImageHandlesSubImages(t *testing.T) {
	src := stdimage.NewNRGBA(stdimage.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	sub := src.SubImage(stdimage.Rect(1, 1, 3, 3))

	img := FromImage(sub)
	require.Equal(t, 2, img.Width())
	require.Equal(t, 2, img.Height())
	assert.Equal(t, []byte{1, 1, 7, 2, 1, 7, 1, 2, 7, 2, 2, 7}, img.Pix())
}

func TestToImageRestoresOpaqueAlpha(t *testing.T) {
	img, err := New(1, 1, RGB8, []byte{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 20, 30, 255}, img.ToImage().Pix)
}

func TestMaxDataCapacity(t *testing.T) {
	tests := []struct {
		name     string
		pixels   int
		format   PixelFormat
		bits     config.ChannelBits
		expected int
	}{
		{name: "default rgb", pixels: 100, format: RGB8, bits: config.DefaultChannelBits(), expected: (300 - 128) / 8},
		{name: "alpha ignored on rgb", pixels: 100, format: RGB8, bits: config.ChannelBits{Red: 1, Green: 1, Blue: 1, Alpha: 8}, expected: (300 - 128) / 8},
		{name: "alpha used on rgba", pixels: 100, format: RGBA8, bits: config.ChannelBits{Red: 1, Green: 1, Blue: 1, Alpha: 8}, expected: (1100 - 128) / 8},
		{name: "too small for the length prefix", pixels: 42, format: RGB8, bits: config.DefaultChannelBits(), expected: 0},
		{name: "exactly the length prefix", pixels: 16, format: RGB8, bits: config.ChannelBits{Red: 8}, expected: 0},
		{name: "zero widths", pixels: 100, format: RGBA8, bits: config.ChannelBits{}, expected: 0},
		{name: "invalid width", pixels: 100, format: RGB8, bits: config.ChannelBits{Red: 9}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := New(tt.pixels, 1, tt.format, make([]byte, tt.pixels*tt.format.Channels()))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, img.MaxDataCapacity(tt.bits))
		})
	}
}

func TestMaxDataCapacityIsMonotonic(t *testing.T) {
	previousBySize := 0
	for _, size := range []int{1, 5, 10, 20, 40, 80} {
		img := generateImage(size, size, true)
		previousByWidth := 0
		for w := config.BitWidth(0); w <= config.MaxBitWidth; w++ {
			capacity := img.MaxDataCapacity(config.ChannelBits{Red: 1, Green: w, Blue: 1, Alpha: w})
			assert.GreaterOrEqual(t, capacity, previousByWidth, "size %d green/alpha width %d", size, w)
			previousByWidth = capacity
		}

		capacity := img.MaxDataCapacity(config.DefaultChannelBits())
		assert.GreaterOrEqual(t, capacity, previousBySize, "size %d", size)
		previousBySize = capacity
	}
}

func TestMinPixelsNeeded(t *testing.T) {
	pixels, err := MinPixelsNeeded(0, config.DefaultChannelBits(), false)
	require.NoError(t, err)
	assert.Equal(t, 43, pixels)

	pixels, err = MinPixelsNeeded(100, config.ChannelBits{Red: 2, Green: 2, Blue: 2, Alpha: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, (800+128)/8, pixels)

	_, err = MinPixelsNeeded(100, config.ChannelBits{Alpha: 4}, false)
	assert.ErrorIs(t, err, config.ErrInvalidConfiguration)
}

func TestMinPixelsNeededMatchesCapacity(t *testing.T) {
	for _, bits := range []config.ChannelBits{
		config.DefaultChannelBits(),
		{Red: 1, Green: 2, Blue: 3},
		config.UniformChannelBits(7),
	} {
		for _, dataSize := range []int{0, 1, 5, 99, 1000} {
			pixels, err := MinPixelsNeeded(dataSize, bits, false)
			require.NoError(t, err)

			img, err := New(pixels, 1, RGB8, make([]byte, pixels*3))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, img.MaxDataCapacity(bits), dataSize, "%s with %d bytes", bits, dataSize)

			smaller, err := New(pixels-1, 1, RGB8, make([]byte, (pixels-1)*3))
			require.NoError(t, err)
			err = smaller.InsertData(make([]byte, dataSize), config.InsertConfig{Bits: bits})
			assert.ErrorIs(t, err, ErrCapacityExceeded, "%s with %d bytes", bits, dataSize)
		}
	}
}
