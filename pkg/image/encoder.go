package image

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"time"

	"blindsteg/internal/bits"
	"blindsteg/pkg/config"
	"blindsteg/pkg/model"
)

// InsertData hides payload in the least significant bits of the image, preceded by its length. The image is only
// modified once the configuration and the capacity have been validated, so a failed insert leaves it untouched.
func (i *Image) InsertData(payload []byte, iConfig config.InsertConfig) error {
	setupStart := time.Now()
	i.insertStats = model.InsertStats{PayloadBytes: len(payload)}

	widths := iConfig.Bits.Widths(i.format.Channels())
	if err := config.ValidateWidths(widths); err != nil {
		return err
	}
	if i.format == RGBA8 && iConfig.Bits.Alpha == 0 && i.fullyOpaque() {
		return ErrOpaqueCarrier
	}

	capacity, fitsLengthPrefix := i.capacity(iConfig.Bits)
	i.insertStats.CapacityBytes = capacity
	if !fitsLengthPrefix || len(payload) > capacity {
		return &CapacityExceededError{PayloadSize: len(payload), Capacity: capacity}
	}

	dataReader := bufio.NewReader(io.MultiReader(bytes.NewReader(lengthPrefix(len(payload))), bytes.NewReader(payload)))
	separator, err := bits.NewSeparator(dataReader, widths,
		bits.WithExpectedPixels(i.PixelCount()),
		bits.WithRemainingBits(iConfig.RemainingBits))
	if err != nil {
		return err
	}
	i.insertStats.Setup = time.Since(setupStart)

	i.insertDataIntoPixels(separator)
	return separator.Err()
}

func (i *Image) insertDataIntoPixels(separator *bits.Separator) {
	insertStart := time.Now()
	defer func() {
		i.insertStats.DataInsertion = time.Since(insertStart)
	}()

	for p := range i.pix {
		lsbs, mask, ok := separator.Next()
		if !ok {
			break
		}
		// Clear the bits we want to fill, then set them, leaving the high bits of the channel intact
		i.pix[p] = (i.pix[p] &^ mask) | lsbs
	}
}

// lengthPrefix encodes the payload length as a 128-bit big endian unsigned integer. The high half is always zero and
// covers every channel slot of the first pixel, so an RGBA8 image inserted with alpha bits keeps a translucent pixel.
func lengthPrefix(length int) []byte {
	prefix := make([]byte, lengthPrefixSize)
	binary.BigEndian.PutUint64(prefix[lengthPrefixSize-8:], uint64(length))
	return prefix
}
