package bits

import (
	"errors"
	"io"

	"blindsteg/pkg/config"
)

// Combinator is the inverse of Separator, it collects the low bits of every channel byte round-robin and packs them
// back into bytes, most significant bit first.
type Combinator struct {
	src    io.ByteReader
	widths []config.BitWidth

	channelIdx    int
	currentByte   byte
	hasByte       bool
	currentBitIdx uint
	drained       bool
	err           error
}

func NewCombinator(src io.ByteReader, widths []config.BitWidth) (*Combinator, error) {
	if err := config.ValidateWidths(widths); err != nil {
		return nil, err
	}
	return &Combinator{
		src:    src,
		widths: widths,
	}, nil
}

// Next assembles the next byte. If the channel bytes run out part way through a byte, the bits collected so far are
// returned once with the missing low bits set to zero.
func (c *Combinator) Next() (byte, bool) {
	var assembled byte
	var collectedBits uint
	for collectedBits < 8 {
		if !c.hasByte && !c.readByte() {
			return assembled, collectedBits > 0
		}

		availableBits := c.widths[c.channelIdx].Count() - c.currentBitIdx
		neededBits := 8 - collectedBits
		if availableBits > neededBits {
			// Only the top neededBits of what is left in this channel fit, the rest go into the next byte
			assembled |= (c.currentByte >> (availableBits - neededBits)) & bitMask(neededBits)
			collectedBits += neededBits
			c.currentBitIdx += neededBits
		} else {
			assembled |= (c.currentByte & bitMask(availableBits)) << (neededBits - availableBits)
			collectedBits += availableBits
			c.hasByte = false
			c.currentBitIdx = 0
			c.channelIdx = (c.channelIdx + 1) % len(c.widths)
		}
	}
	return assembled, true
}

// Read fills p with reassembled bytes, returning io.EOF once the channel bytes are exhausted
func (c *Combinator) Read(p []byte) (int, error) {
	for i := range p {
		b, ok := c.Next()
		if !ok {
			if i == 0 {
				if c.err != nil {
					return 0, c.err
				}
				return 0, io.EOF
			}
			return i, nil
		}
		p[i] = b
	}
	return len(p), nil
}

// Err returns the first read error of the source other than io.EOF
func (c *Combinator) Err() error {
	return c.err
}

func (c *Combinator) readByte() bool {
	if c.drained {
		return false
	}
	b, err := c.src.ReadByte()
	if err != nil {
		c.drained = true
		if !errors.Is(err, io.EOF) {
			c.err = err
		}
		return false
	}
	c.currentByte = b
	c.hasByte = true
	return true
}

func bitMask(width uint) byte {
	return config.BitWidth(width).Mask()
}
