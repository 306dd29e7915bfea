package image

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"time"

	"blindsteg/internal/bits"
	"blindsteg/pkg/config"
	"blindsteg/pkg/model"
)

// ExtractData recovers a payload previously hidden with InsertData. The bit widths must match the ones used for
// insertion, a mismatch yields garbage or a truncation error rather than a detected configuration error.
func (i *Image) ExtractData(eConfig config.ExtractConfig) ([]byte, error) {
	extractStart := time.Now()
	i.extractStats = model.ExtractStats{}
	defer func() {
		i.extractStats.DataExtraction = time.Since(extractStart)
	}()

	widths := eConfig.Bits.Widths(i.format.Channels())
	combinator, err := bits.NewCombinator(bytes.NewReader(i.pix), widths)
	if err != nil {
		return nil, err
	}

	var prefix [lengthPrefixSize]byte
	if n, err := io.ReadFull(combinator, prefix[:]); err != nil {
		return nil, &TruncatedLengthFieldError{Index: n}
	}
	lengthHigh := binary.BigEndian.Uint64(prefix[:8])
	length := binary.BigEndian.Uint64(prefix[8:])

	// Reject lengths the image cannot possibly hold before allocating anything
	recoverable := i.recoverableBytes(eConfig.Bits) - lengthPrefixSize
	if lengthHigh != 0 || length > uint64(recoverable) {
		if lengthHigh != 0 {
			length = math.MaxUint64
		}
		return nil, &TruncatedPayloadError{Index: recoverable, Length: length}
	}

	payload := make([]byte, length)
	if n, err := io.ReadFull(combinator, payload); err != nil {
		return nil, &TruncatedPayloadError{Index: n, Length: length}
	}

	i.extractStats.PayloadBytes = len(payload)
	return payload, nil
}

// recoverableBytes is the number of bytes the combinator yields over the whole image, a trailing partial byte included
func (i *Image) recoverableBytes(channelBits config.ChannelBits) int {
	usableBits := uint64(channelBits.BitsPerPixel(i.format.Channels())) * uint64(i.PixelCount())
	return int((usableBits + 7) / 8)
}
