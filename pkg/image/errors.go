package image

import (
	"errors"
	"fmt"

	"blindsteg/pkg/config"
)

var (
	ErrInvalidConfiguration    = config.ErrInvalidConfiguration
	ErrCapacityExceeded        = errors.New("supplied image not big enough to contain the data to hide, either choose another image or increase the bits to use")
	ErrTruncatedLengthField    = errors.New("image ran out of data while reading the length field, it was likely not encoded with this configuration")
	ErrTruncatedPayload        = errors.New("image ran out of data while reading the payload, it was likely not encoded with this configuration")
	ErrInvalidPixelBuffer      = errors.New("pixel buffer does not match the image dimensions")
	ErrUnsupportedOutputFormat = errors.New("unsupported output format, only lossless formats can carry hidden data")
	ErrOpaqueCarrier           = errors.New("rgba8 image is fully opaque and would be saved without alpha, use at least one alpha bit or an rgb8 image")
)

type CapacityExceededError struct {
	PayloadSize int
	Capacity    int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: payload is %d bytes, capacity is %d bytes", ErrCapacityExceeded, e.PayloadSize, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// TruncatedLengthFieldError reports how many bytes of the length field could be recovered
type TruncatedLengthFieldError struct {
	Index int
}

func (e *TruncatedLengthFieldError) Error() string {
	return fmt.Sprintf("%s: missing byte %d of %d", ErrTruncatedLengthField, e.Index, lengthPrefixSize)
}

func (e *TruncatedLengthFieldError) Unwrap() error {
	return ErrTruncatedLengthField
}

// TruncatedPayloadError reports the index of the first payload byte that could not be recovered
type TruncatedPayloadError struct {
	Index  int
	Length uint64
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("%s: missing byte %d of %d", ErrTruncatedPayload, e.Index, e.Length)
}

func (e *TruncatedPayloadError) Unwrap() error {
	return ErrTruncatedPayload
}
