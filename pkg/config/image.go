package config

import (
	"errors"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"
)

const (
	MaxBitWidth BitWidth = 8

	// DefaultRandomSeed is used to fill remaining bits when randomization is requested without a seed, so that the
	// output of an insertion is reproducible run to run
	DefaultRandomSeed uint64 = 0x5eed_b175_0f_1ea5
)

var (
	ErrInvalidConfiguration = errors.New("invalid bit configuration, at least one channel must carry data")
	ErrInvalidBitWidth      = errors.New("bit width must be between 0 and 8")
	ErrUnknownRemainingBits = errors.New("unknown remaining bits action, options are none, zero, randomize")
	ErrUnknownOutputFormat  = errors.New("unknown output format, options are png, bmp, tiff")
)

var bitMasks = [MaxBitWidth + 1]byte{0x00, 0x01, 0x03, 0x07, 0x0f, 0x1f, 0x3f, 0x7f, 0xff}

// BitWidth is the number of least significant bits of a single channel byte that carry payload data
type BitWidth uint8

func BitWidthFromCount(count int) (BitWidth, error) {
	if count < 0 || count > int(MaxBitWidth) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidBitWidth, count)
	}
	return BitWidth(count), nil
}

func (w BitWidth) Valid() bool {
	return w <= MaxBitWidth
}

func (w BitWidth) Count() uint {
	return uint(w)
}

// Mask has the low Count() bits set
func (w BitWidth) Mask() byte {
	return bitMasks[w]
}

// ChannelBits holds the bit width of every channel. Channels are filled round-robin in the order red, green, blue,
// alpha. Alpha is ignored for images without an alpha channel.
type ChannelBits struct {
	Red   BitWidth
	Green BitWidth
	Blue  BitWidth
	Alpha BitWidth
}

func DefaultChannelBits() ChannelBits {
	return ChannelBits{Red: 1, Green: 1, Blue: 1, Alpha: 0}
}

// UniformChannelBits uses the same width for all color channels and leaves alpha untouched
func UniformChannelBits(width BitWidth) ChannelBits {
	return ChannelBits{Red: width, Green: width, Blue: width}
}

func (c ChannelBits) Widths(channels int) []BitWidth {
	if channels == 4 {
		return []BitWidth{c.Red, c.Green, c.Blue, c.Alpha}
	}
	return []BitWidth{c.Red, c.Green, c.Blue}
}

func (c ChannelBits) BitsPerPixel(channels int) uint {
	var total uint
	for _, w := range c.Widths(channels) {
		total += w.Count()
	}
	return total
}

func (c ChannelBits) Validate(channels int) error {
	return ValidateWidths(c.Widths(channels))
}

func (c ChannelBits) String() string {
	return fmt.Sprintf("r%d g%d b%d a%d", c.Red, c.Green, c.Blue, c.Alpha)
}

// ValidateWidths checks that every width is in range and that the widths add up to at least one bit
func ValidateWidths(widths []BitWidth) error {
	var total uint
	for idx, w := range widths {
		if !w.Valid() {
			return fmt.Errorf("%w: channel %d has width %d: %w", ErrInvalidConfiguration, idx, w, ErrInvalidBitWidth)
		}
		total += w.Count()
	}
	if total == 0 {
		return ErrInvalidConfiguration
	}
	return nil
}

type RemainingBitsKind uint8

const (
	RemainingBitsNone RemainingBitsKind = iota
	RemainingBitsZero
	RemainingBitsRandomize
)

// RemainingBitsAction decides what is written into the channel slots left over once the payload is exhausted
type RemainingBitsAction struct {
	Kind RemainingBitsKind
	// Seed only applies to RemainingBitsRandomize, nil falls back to DefaultRandomSeed
	Seed *uint64
}

func LeaveRemainingBits() RemainingBitsAction {
	return RemainingBitsAction{Kind: RemainingBitsNone}
}

func ZeroRemainingBits() RemainingBitsAction {
	return RemainingBitsAction{Kind: RemainingBitsZero}
}

func RandomizeRemainingBits(seed uint64) RemainingBitsAction {
	return RemainingBitsAction{Kind: RemainingBitsRandomize, Seed: &seed}
}

func RandomizeRemainingBitsUnseeded() RemainingBitsAction {
	return RemainingBitsAction{Kind: RemainingBitsRandomize}
}

func (a RemainingBitsAction) SeedOrDefault() uint64 {
	if a.Seed == nil {
		return DefaultRandomSeed
	}
	return *a.Seed
}

func (a RemainingBitsAction) String() string {
	switch a.Kind {
	case RemainingBitsZero:
		return "zero"
	case RemainingBitsRandomize:
		return "randomize"
	default:
		return "none"
	}
}

func ParseRemainingBitsAction(name string) (RemainingBitsAction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return LeaveRemainingBits(), nil
	case "zero":
		return ZeroRemainingBits(), nil
	case "randomize", "random":
		return RandomizeRemainingBitsUnseeded(), nil
	}
	return RemainingBitsAction{}, fmt.Errorf("%w: %q", ErrUnknownRemainingBits, name)
}

type InsertConfig struct {
	Bits          ChannelBits
	RemainingBits RemainingBitsAction
}

func DefaultInsertConfig() InsertConfig {
	return InsertConfig{Bits: DefaultChannelBits(), RemainingBits: LeaveRemainingBits()}
}

type ExtractConfig struct {
	Bits ChannelBits
}

func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{Bits: DefaultChannelBits()}
}

type OutputFormat string

const (
	OutputPNG  OutputFormat = "png"
	OutputBMP  OutputFormat = "bmp"
	OutputTIFF OutputFormat = "tiff"
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}
)

// OutputConfig controls how the carrier image is written back to disk. Only lossless formats are supported, any lossy
// re-encoding would destroy the hidden data.
type OutputConfig struct {
	Format              OutputFormat
	PngCompressionLevel png.CompressionLevel
}

func DefaultOutputConfig() OutputConfig {
	return OutputConfig{Format: OutputPNG, PngCompressionLevel: png.DefaultCompression}
}

func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "png":
		return OutputPNG, nil
	case "bmp":
		return OutputBMP, nil
	case "tif", "tiff":
		return OutputTIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOutputFormat, name)
}

// FormatFromPath picks the output format from the file extension, defaulting to png
func FormatFromPath(path string) OutputFormat {
	format, err := ParseOutputFormat(filepath.Ext(path))
	if err != nil {
		return OutputPNG
	}
	return format
}

// ParsePngCompression maps default, none, fast and best to png compression levels. Unknown values map to the default
func ParsePngCompression(name string) png.CompressionLevel {
	mappedCompression, found := pngCompressionMapping[strings.ToLower(name)]
	if !found {
		return png.DefaultCompression
	}
	return mappedCompression
}
