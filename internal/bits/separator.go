package bits

import (
	"errors"
	"io"
	"math/rand/v2"

	"blindsteg/pkg/config"
)

// Separator splits a byte stream into per channel bit groups. The source is read as one continuous bitstring, most
// significant bit first, and cut into consecutive groups whose sizes follow the channel widths round-robin. Each
// group is returned right aligned together with the mask of the channel bits it should replace.
type Separator struct {
	src    io.ByteReader
	widths []config.BitWidth

	channelIdx    int
	currentByte   byte
	hasByte       bool
	currentBitIdx uint
	drained       bool
	err           error

	bounded  bool
	maxSlots int
	emitted  int
	action   config.RemainingBitsAction
	rng      *rand.Rand
}

type SeparatorOption func(s *Separator)

// WithExpectedPixels bounds the output to one pair per channel of the given number of pixels, and enables padding
// of the slots left once the source is drained
func WithExpectedPixels(pixels int) SeparatorOption {
	return func(s *Separator) {
		s.bounded = true
		s.maxSlots = pixels * len(s.widths)
	}
}

func WithRemainingBits(action config.RemainingBitsAction) SeparatorOption {
	return func(s *Separator) {
		s.action = action
	}
}

func NewSeparator(src io.ByteReader, widths []config.BitWidth, opts ...SeparatorOption) (*Separator, error) {
	if err := config.ValidateWidths(widths); err != nil {
		return nil, err
	}

	s := &Separator{
		src:    src,
		widths: widths,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Next returns the bits to write into the next channel slot and the mask of bits they replace. ok is false once
// there is nothing left to write.
func (s *Separator) Next() (bits, mask byte, ok bool) {
	if s.bounded && s.emitted >= s.maxSlots {
		return 0, 0, false
	}

	width := s.widths[s.channelIdx]
	mask = width.Mask()
	if !s.hasByte && !s.readByte() {
		return s.pad(mask)
	}

	bitsNeeded := width.Count()
	bitsLeftInByte := 8 - s.currentBitIdx
	if bitsNeeded <= bitsLeftInByte {
		bits = (s.currentByte >> (bitsLeftInByte - bitsNeeded)) & mask
		s.currentBitIdx += bitsNeeded
		if s.currentBitIdx == 8 {
			s.currentBitIdx = 0
			s.hasByte = false
		}
	} else {
		// Group straddles two source bytes, the high part comes from the tail of the current byte and the low part
		// from the head of the next one
		bitsFromNextByte := bitsNeeded - bitsLeftInByte
		bits = (s.currentByte & (1<<bitsLeftInByte - 1)) << bitsFromNextByte
		s.hasByte = false
		s.currentBitIdx = 0
		if s.readByte() {
			bits |= s.currentByte >> (8 - bitsFromNextByte)
			s.currentBitIdx = bitsFromNextByte
		}
	}

	s.advance()
	return bits, mask, true
}

// Emitted is the number of pairs returned so far, padding included
func (s *Separator) Emitted() int {
	return s.emitted
}

// Err returns the first read error of the source other than io.EOF. A read error ends the source like EOF does.
func (s *Separator) Err() error {
	return s.err
}

func (s *Separator) pad(mask byte) (byte, byte, bool) {
	if !s.bounded {
		return 0, 0, false
	}

	var bits byte
	switch s.action.Kind {
	case config.RemainingBitsZero:
	case config.RemainingBitsRandomize:
		if s.rng == nil {
			seed := s.action.SeedOrDefault()
			s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
		bits = byte(s.rng.Uint32()) & mask
	default:
		return 0, 0, false
	}

	s.advance()
	return bits, mask, true
}

func (s *Separator) readByte() bool {
	if s.drained {
		return false
	}
	b, err := s.src.ReadByte()
	if err != nil {
		s.drained = true
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		return false
	}
	s.currentByte = b
	s.hasByte = true
	return true
}

func (s *Separator) advance() {
	s.channelIdx = (s.channelIdx + 1) % len(s.widths)
	s.emitted++
}
