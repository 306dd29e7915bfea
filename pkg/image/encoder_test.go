package image

import (
	"errors"
	"testing"

	"blindsteg/pkg/config"
	"blindsteg/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsHighBits(t *testing.T) {
	runImageTestsWithAllLSBsAndOpaquenessSettings(t, func(t *testing.T, LSBsToUse config.BitWidth, randomizePixelOpaqueness bool) {
		img := generateImage(testImageSize, testImageSize, randomizePixelOpaqueness)
		original := append([]byte(nil), img.Pix()...)

		bits := config.UniformChannelBits(LSBsToUse)
		bits.Alpha = LSBsToUse / 2
		payload := test.GenerateRandomBytes(img.MaxDataCapacity(bits) / 2)
		err := img.InsertData(payload, config.InsertConfig{Bits: bits, RemainingBits: config.RandomizeRemainingBitsUnseeded()})
		require.NoError(t, err)

		widths := bits.Widths(img.Format().Channels())
		for p, v := range img.Pix() {
			mask := widths[p%len(widths)].Mask()
			if v&^mask != original[p]&^mask {
				t.Fatalf("High bits of channel byte %d changed with %d LSBs, expected|got %08b|%08b", p, LSBsToUse,
					original[p], v)
			}
		}
	})
}

func TestInsertRejectsZeroWidthsWithoutTouchingImage(t *testing.T) {
	for _, randomizePixelOpaqueness := range []bool{false, true} {
		t.Run(getOpaquenessLabel(randomizePixelOpaqueness), func(t *testing.T) {
			img := generateImage(10, 10, randomizePixelOpaqueness)
			original := append([]byte(nil), img.Pix()...)

			err := img.InsertData([]byte("data"), config.InsertConfig{RemainingBits: config.ZeroRemainingBits()})
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Equal(t, original, img.Pix())
		})
	}
}

func TestInsertIgnoresAlphaWidthOnOpaqueImages(t *testing.T) {
	img := generateImage(10, 10, false)
	require.Equal(t, RGB8, img.Format())

	err := img.InsertData([]byte("data"), config.InsertConfig{Bits: config.ChannelBits{Alpha: 8}})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestInsertRejectsOversizedPayloadWithoutTouchingImage(t *testing.T) {
	img := generateImage(20, 20, false)
	original := append([]byte(nil), img.Pix()...)
	bits := config.DefaultChannelBits()
	capacity := img.MaxDataCapacity(bits)

	err := img.InsertData(make([]byte, capacity+1), config.InsertConfig{Bits: bits, RemainingBits: config.ZeroRemainingBits()})
	require.ErrorIs(t, err, ErrCapacityExceeded)

	var capacityErr *CapacityExceededError
	require.True(t, errors.As(err, &capacityErr))
	assert.Equal(t, capacity+1, capacityErr.PayloadSize)
	assert.Equal(t, capacity, capacityErr.Capacity)
	assert.Equal(t, original, img.Pix())
}

func TestInsertRejectsImagesTooSmallForTheLengthPrefix(t *testing.T) {
	img := generateImage(6, 7, false)
	original := append([]byte(nil), img.Pix()...)

	err := img.InsertData(nil, config.DefaultInsertConfig())
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, original, img.Pix())
}

func TestInsertZeroFillsRemainingBits(t *testing.T) {
	img := generateImage(20, 20, false)
	iConfig := config.InsertConfig{
		Bits:          config.ChannelBits{Red: 1, Green: 2, Blue: 3},
		RemainingBits: config.ZeroRemainingBits(),
	}
	payload := []byte{0xff, 0xff, 0xff, 0xff, 0xff}
	require.NoError(t, img.InsertData(payload, iConfig))

	widths := iConfig.Bits.Widths(img.Format().Channels())
	framedBits := (lengthPrefixSize + len(payload)) * 8
	consumedBits := 0
	for p, v := range img.Pix() {
		width := widths[p%len(widths)]
		if consumedBits >= framedBits && v&width.Mask() != 0 {
			t.Fatalf("Channel byte %d was not zero filled: %08b", p, v)
		}
		consumedBits += int(width.Count())
	}
}

func TestInsertLeavesRemainingBitsUntouched(t *testing.T) {
	img := generateImage(20, 20, false)
	original := append([]byte(nil), img.Pix()...)
	payload := []byte("hello")
	require.NoError(t, img.InsertData(payload, config.DefaultInsertConfig()))

	// one bit per channel byte, so the framed data covers exactly this many channel bytes
	framedChannels := (lengthPrefixSize + len(payload)) * 8
	assert.Equal(t, original[framedChannels:], img.Pix()[framedChannels:])
}

func TestInsertRandomizeIsReproducible(t *testing.T) {
	base := generateImage(30, 30, true)
	payload := []byte("hidden")
	insertWithSeed := func(seed uint64) *Image {
		img := cloneImage(base)
		err := img.InsertData(payload, config.InsertConfig{
			Bits:          config.UniformChannelBits(2),
			RemainingBits: config.RandomizeRemainingBits(seed),
		})
		require.NoError(t, err)
		return img
	}

	first, second, other := insertWithSeed(4), insertWithSeed(4), insertWithSeed(5)
	assert.Equal(t, first.Pix(), second.Pix())
	assert.NotEqual(t, first.Pix(), other.Pix())

	for _, img := range []*Image{first, other} {
		extracted, err := img.ExtractData(config.ExtractConfig{Bits: config.UniformChannelBits(2)})
		require.NoError(t, err)
		assert.Equal(t, payload, extracted)
	}
}

func TestInsertRandomizeWithoutSeedUsesDefaultSeed(t *testing.T) {
	base := generateImage(30, 30, false)
	unseeded, seeded := cloneImage(base), cloneImage(base)

	bits := config.DefaultChannelBits()
	require.NoError(t, unseeded.InsertData([]byte("x"), config.InsertConfig{Bits: bits, RemainingBits: config.RandomizeRemainingBitsUnseeded()}))
	require.NoError(t, seeded.InsertData([]byte("x"), config.InsertConfig{Bits: bits, RemainingBits: config.RandomizeRemainingBits(config.DefaultRandomSeed)}))
	assert.Equal(t, seeded.Pix(), unseeded.Pix())
}

func TestInsertRecordsStats(t *testing.T) {
	img := generateImage(20, 20, false)
	require.NoError(t, img.InsertData([]byte("stats"), config.DefaultInsertConfig()))

	stats := img.InsertStats()
	assert.Equal(t, 5, stats.PayloadBytes)
	assert.Equal(t, img.MaxDataCapacity(config.DefaultChannelBits()), stats.CapacityBytes)
}

func TestInsertRejectsOpaqueRGBA8WithoutAlphaBits(t *testing.T) {
	pix := make([]byte, 20*20*4)
	for p := range pix {
		pix[p] = 0xff
	}
	img, err := New(20, 20, RGBA8, pix)
	require.NoError(t, err)
	original := append([]byte(nil), img.Pix()...)

	err = img.InsertData([]byte("opaque"), config.InsertConfig{Bits: config.DefaultChannelBits()})
	assert.ErrorIs(t, err, ErrOpaqueCarrier)
	assert.Equal(t, original, img.Pix())

	bits := config.ChannelBits{Red: 1, Green: 1, Blue: 1, Alpha: 1}
	require.NoError(t, img.InsertData([]byte("opaque"), config.InsertConfig{Bits: bits}))
	assert.False(t, img.fullyOpaque())
}
