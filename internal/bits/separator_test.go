package bits

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"testing"
	"testing/iotest"

	"blindsteg/pkg/config"
	"blindsteg/test"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Bits, Mask byte
}

func widths(counts ...int) []config.BitWidth {
	ws := make([]config.BitWidth, len(counts))
	for i, c := range counts {
		ws[i] = config.BitWidth(c)
	}
	return ws
}

func collectPairs(t *testing.T, data []byte, ws []config.BitWidth, opts ...SeparatorOption) []pair {
	t.Helper()
	sep, err := NewSeparator(bytes.NewReader(data), ws, opts...)
	require.NoError(t, err)

	var pairs []pair
	for {
		bits, mask, ok := sep.Next()
		if !ok {
			break
		}
		pairs = append(pairs, pair{bits, mask})
	}
	return pairs
}

func TestSeparatorLiteralVectors(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		widths []config.BitWidth
		want   []pair
	}{
		{
			name:   "rgb one bit each",
			input:  []byte{0b01011010},
			widths: widths(1, 1, 1),
			want: []pair{
				{0, 1}, {1, 1}, {0, 1}, {1, 1}, {1, 1}, {0, 1}, {1, 1}, {0, 1},
			},
		},
		{
			name:   "rgba one bit each",
			input:  []byte{0b01011010},
			widths: widths(1, 1, 1, 1),
			want: []pair{
				{0, 1}, {1, 1}, {0, 1}, {1, 1}, {1, 1}, {0, 1}, {1, 1}, {0, 1},
			},
		},
		{
			name:   "rgb one two three",
			input:  []byte{0b0_10_110_1_0},
			widths: widths(1, 2, 3),
			want: []pair{
				{0b0, 0b1}, {0b10, 0b11}, {0b110, 0b111}, {0b1, 0b1}, {0b00, 0b11},
			},
		},
		{
			name:   "rgba one two three four",
			input:  []byte{0b0_10_110_10},
			widths: widths(1, 2, 3, 4),
			want: []pair{
				{0b0, 0b1}, {0b10, 0b11}, {0b110, 0b111}, {0b1000, 0b1111},
			},
		},
		{
			name:   "group carried across two source bytes",
			input:  []byte{0b0_10_110_1_0, 0b1_100_1_10_0},
			widths: widths(1, 2, 3),
			want: []pair{
				{0b0, 0b1}, {0b10, 0b11}, {0b110, 0b111},
				{0b1, 0b1}, {0b01, 0b11}, {0b100, 0b111},
				{0b1, 0b1}, {0b10, 0b11}, {0b000, 0b111},
			},
		},
		{
			name:   "zero width channel mid stream",
			input:  []byte{0b11_01_10_00},
			widths: widths(2, 0, 2),
			want: []pair{
				{0b11, 0b11}, {0, 0}, {0b01, 0b11}, {0b10, 0b11}, {0, 0}, {0b00, 0b11},
			},
		},
		{
			name:   "full bytes",
			input:  []byte{0xde, 0xad, 0xbe},
			widths: widths(8, 8, 8),
			want: []pair{
				{0xde, 0xff}, {0xad, 0xff}, {0xbe, 0xff},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectPairs(t, tt.input, tt.widths)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("separator output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeparatorExhaustionWithoutPolicy(t *testing.T) {
	data := test.GenerateRandomBytes(97)
	for bitsPerChannel := 1; bitsPerChannel <= 8; bitsPerChannel++ {
		ws := widths(bitsPerChannel, bitsPerChannel, bitsPerChannel)
		expectedPairs := (len(data)*8 + bitsPerChannel - 1) / bitsPerChannel

		got := collectPairs(t, data, ws, WithRemainingBits(config.LeaveRemainingBits()))
		if len(got) != expectedPairs {
			t.Errorf("Expected %d pairs with %d bits per channel, got %d", expectedPairs, bitsPerChannel, len(got))
		}

		// An exhausted separator keeps reporting the end
		sep, err := NewSeparator(bytes.NewReader(nil), ws)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, _, ok := sep.Next()
			assert.False(t, ok)
		}
	}
}

func TestSeparatorRejectsZeroWidthConfiguration(t *testing.T) {
	for _, ws := range [][]config.BitWidth{widths(0, 0, 0), widths(0, 0, 0, 0), widths(9, 1, 1)} {
		_, err := NewSeparator(bytes.NewReader([]byte{1, 2, 3}), ws)
		assert.ErrorIs(t, err, config.ErrInvalidConfiguration, "widths %v", ws)
	}
}

func TestSeparatorStopsAtExpectedPixels(t *testing.T) {
	got := collectPairs(t, []byte{0xff, 0xff}, widths(1, 1, 1), WithExpectedPixels(1))
	assert.Len(t, got, 3)
}

func TestSeparatorNonePolicyEndsOnDrain(t *testing.T) {
	got := collectPairs(t, []byte{0xff}, widths(1, 1, 1),
		WithExpectedPixels(10), WithRemainingBits(config.LeaveRemainingBits()))
	assert.Len(t, got, 8)
}

func TestSeparatorZeroPadding(t *testing.T) {
	const pixels = 5
	got := collectPairs(t, []byte{0xff}, widths(1, 2, 3),
		WithExpectedPixels(pixels), WithRemainingBits(config.ZeroRemainingBits()))

	require.Len(t, got, pixels*3)
	// 0xff spreads over 1+2+3+1 bits and a partial group with one real bit
	want := []pair{{0b1, 0b1}, {0b11, 0b11}, {0b111, 0b111}, {0b1, 0b1}, {0b10, 0b11}}
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("data pairs mismatch (-want +got):\n%s", diff)
	}
	for idx, p := range got[len(want):] {
		assert.Zero(t, p.Bits, "padding slot %d", idx)
		assert.Equal(t, widths(1, 2, 3)[(idx+len(want))%3].Mask(), p.Mask, "padding slot %d", idx)
	}
}

func TestSeparatorRandomPaddingIsReproducible(t *testing.T) {
	const pixels = 1000
	ws := widths(2, 3, 1, 4)
	data := []byte("Hallo")

	first := collectPairs(t, data, ws, WithExpectedPixels(pixels), WithRemainingBits(config.RandomizeRemainingBits(4)))
	second := collectPairs(t, data, ws, WithExpectedPixels(pixels), WithRemainingBits(config.RandomizeRemainingBits(4)))
	other := collectPairs(t, data, ws, WithExpectedPixels(pixels), WithRemainingBits(config.RandomizeRemainingBits(5)))
	unseeded := collectPairs(t, data, ws, WithExpectedPixels(pixels), WithRemainingBits(config.RandomizeRemainingBitsUnseeded()))
	unseededAgain := collectPairs(t, data, ws, WithExpectedPixels(pixels), WithRemainingBits(config.RandomizeRemainingBitsUnseeded()))

	require.Len(t, first, pixels*len(ws))
	assert.Equal(t, first, second)
	assert.Equal(t, unseeded, unseededAgain)
	assert.NotEqual(t, first, other)

	for idx, p := range first {
		assert.Zero(t, p.Bits&^p.Mask, "slot %d has bits outside of its mask", idx)
	}
}

func TestSeparatorReportsReadErrors(t *testing.T) {
	readErr := errors.New("disk on fire")
	src := bufio.NewReader(iotest.ErrReader(readErr))
	sep, err := NewSeparator(src, widths(1, 1, 1))
	require.NoError(t, err)

	_, _, ok := sep.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, sep.Err(), readErr)
}

func TestSeparatorCombinatorRoundTrip(t *testing.T) {
	data := test.GenerateRandomBytes(64)
	for _, channels := range []int{3, 4} {
		for r := 0; r <= 8; r++ {
			for g := 0; g <= 8; g++ {
				for b := 0; b <= 8; b += 2 {
					counts := []int{r, g, b}
					if channels == 4 {
						counts = append(counts, (r+g+b)%9)
					}
					ws := widths(counts...)
					if config.ValidateWidths(ws) != nil {
						continue
					}
					t.Run(fmt.Sprintf("widths-%v", counts), func(t *testing.T) {
						roundTrip(t, data, ws)
					})
				}
			}
		}
	}
}

func roundTrip(t *testing.T, data []byte, ws []config.BitWidth) {
	pairs := collectPairs(t, data, ws)
	carrier := test.GenerateRandomBytes(len(pairs))
	original := bytes.Clone(carrier)
	for i, p := range pairs {
		carrier[i] = (carrier[i] &^ p.Mask) | p.Bits
		if carrier[i]&^p.Mask != original[i]&^p.Mask {
			t.Fatalf("High bits of channel byte %d were modified", i)
		}
	}

	comb, err := NewCombinator(bytes.NewReader(carrier), ws)
	require.NoError(t, err)
	recovered := make([]byte, len(data))
	for i := range recovered {
		b, ok := comb.Next()
		if !ok {
			t.Fatalf("Combinator ended after %d of %d bytes", i, len(data))
		}
		recovered[i] = b
	}
	if !bytes.Equal(data, recovered) {
		t.Errorf("Recovered bytes do not match the original with widths %v", ws)
	}
}
