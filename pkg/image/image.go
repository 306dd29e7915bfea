package image

import (
	"fmt"
	"image"
	"image/draw"

	"blindsteg/pkg/config"
	"blindsteg/pkg/model"
)

const (
	// lengthPrefixSize is the size in bytes of the big endian length that precedes the payload
	lengthPrefixSize = 16
	lengthPrefixBits = lengthPrefixSize * 8
)

type PixelFormat uint8

const (
	RGB8  PixelFormat = 3
	RGBA8 PixelFormat = 4
)

func (f PixelFormat) Channels() int {
	return int(f)
}

func (f PixelFormat) HasAlpha() bool {
	return f == RGBA8
}

func (f PixelFormat) String() string {
	switch f {
	case RGB8:
		return "rgb8"
	case RGBA8:
		return "rgba8"
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

// Image owns a flat, row major buffer of interleaved 8-bit channels. Data is hidden in, and recovered from, the
// least significant bits of those channels.
type Image struct {
	width, height int
	format        PixelFormat
	pix           []byte

	insertStats  model.InsertStats
	extractStats model.ExtractStats
}

// New wraps an existing pixel buffer, which must hold exactly width*height pixels of the given format. The image
// takes ownership of pix.
func New(width, height int, format PixelFormat, pix []byte) (*Image, error) {
	if format != RGB8 && format != RGBA8 {
		return nil, fmt.Errorf("%w: unknown pixel format %s", ErrInvalidPixelBuffer, format)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidPixelBuffer, width, height)
	}
	if expected := width * height * format.Channels(); len(pix) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d %s, got %d", ErrInvalidPixelBuffer, expected, width,
			height, format, len(pix))
	}
	return &Image{width: width, height: height, format: format, pix: pix}, nil
}

// FromImage copies any decoded image into a pixel buffer. Fully opaque images become RGB8, everything else RGBA8 with
// non premultiplied alpha.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) || nrgba.Stride != 4*bounds.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}

	width, height := bounds.Dx(), bounds.Dy()
	srcPix := nrgba.Pix[:width*height*4]
	if !isOpaque(src) {
		return &Image{width: width, height: height, format: RGBA8, pix: append([]byte(nil), srcPix...)}
	}

	pix := make([]byte, 0, width*height*3)
	for p := 0; p < len(srcPix); p += 4 {
		pix = append(pix, srcPix[p:p+3]...)
	}
	return &Image{width: width, height: height, format: RGB8, pix: pix}
}

// ToImage converts the pixel buffer to an NRGBA image, RGB8 buffers get a fully opaque alpha channel
func (i *Image) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, i.width, i.height))
	if i.format == RGBA8 {
		copy(img.Pix, i.pix)
		return img
	}
	for p, q := 0, 0; p < len(i.pix); p, q = p+3, q+4 {
		copy(img.Pix[q:q+3], i.pix[p:p+3])
		img.Pix[q+3] = 255
	}
	return img
}

func (i *Image) Width() int {
	return i.width
}

func (i *Image) Height() int {
	return i.height
}

func (i *Image) Format() PixelFormat {
	return i.format
}

// Pix exposes the underlying buffer, it is not a copy
func (i *Image) Pix() []byte {
	return i.pix
}

func (i *Image) PixelCount() int {
	return i.width * i.height
}

func (i *Image) InsertStats() model.InsertStats {
	return i.insertStats
}

func (i *Image) ExtractStats() model.ExtractStats {
	return i.extractStats
}

// MaxDataCapacity is the largest payload in bytes that fits in the image with the given bit widths, after reserving
// room for the length prefix. Invalid configurations and images too small for the prefix have no capacity.
func (i *Image) MaxDataCapacity(bits config.ChannelBits) int {
	capacity, _ := i.capacity(bits)
	return capacity
}

func (i *Image) capacity(bits config.ChannelBits) (capacity int, fitsLengthPrefix bool) {
	if bits.Validate(i.format.Channels()) != nil {
		return 0, false
	}
	usableBits := uint64(bits.BitsPerPixel(i.format.Channels())) * uint64(i.PixelCount())
	if usableBits < lengthPrefixBits {
		return 0, false
	}
	return int((usableBits - lengthPrefixBits) / 8), true
}

// MinPixelsNeeded is the smallest number of pixels able to hold dataSize bytes plus the length prefix
func MinPixelsNeeded(dataSize int, bits config.ChannelBits, hasAlpha bool) (int, error) {
	channels := RGB8.Channels()
	if hasAlpha {
		channels = RGBA8.Channels()
	}
	if err := bits.Validate(channels); err != nil {
		return 0, err
	}
	if dataSize < 0 {
		return 0, fmt.Errorf("negative data size %d", dataSize)
	}

	bitsPerPixel := uint64(bits.BitsPerPixel(channels))
	neededBits := uint64(dataSize)*8 + lengthPrefixBits
	return int((neededBits + bitsPerPixel - 1) / bitsPerPixel), nil
}

// fullyOpaque reports whether an RGBA8 buffer has no translucent pixel. Lossless encoders drop the alpha channel of
// such images, so they decode back as RGB8.
func (i *Image) fullyOpaque() bool {
	if i.format != RGBA8 {
		return true
	}
	for p := 3; p < len(i.pix); p += 4 {
		if i.pix[p] != 0xff {
			return false
		}
	}
	return true
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}

	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
