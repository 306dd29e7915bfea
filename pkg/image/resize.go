package image

import (
	"image"
	"math"

	"blindsteg/pkg/config"

	"github.com/disintegration/gift"
)

// FitOptions bounds how far a carrier may be scaled to fit a payload. Zero disables the corresponding direction.
type FitOptions struct {
	// ShrinkToMinPixels shrinks images with spare capacity, but never below this many pixels
	ShrinkToMinPixels int
	// GrowToMaxPixels grows images that are too small, but never above this many pixels
	GrowToMaxPixels int
}

func (o FitOptions) enabled() bool {
	return o.ShrinkToMinPixels > 0 || o.GrowToMaxPixels > 0
}

// FitToPayload scales src so its pixel count is as close as the options allow to the minimum needed to carry dataSize
// bytes. The source image is returned untouched when no scaling applies.
func FitToPayload(src image.Image, dataSize int, bits config.ChannelBits, opts FitOptions) (image.Image, error) {
	if !opts.enabled() {
		return src, nil
	}

	minPixels, err := MinPixelsNeeded(dataSize, bits, !isOpaque(src))
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	currentPixels := bounds.Dx() * bounds.Dy()
	if currentPixels == 0 {
		return src, nil
	}

	targetPixels := currentPixels
	switch {
	case currentPixels > minPixels && opts.ShrinkToMinPixels > 0 && currentPixels > opts.ShrinkToMinPixels:
		targetPixels = max(minPixels, opts.ShrinkToMinPixels)
	case currentPixels < minPixels && opts.GrowToMaxPixels > 0 && currentPixels < opts.GrowToMaxPixels:
		targetPixels = min(minPixels, opts.GrowToMaxPixels)
	}
	if targetPixels == currentPixels {
		return src, nil
	}

	width, height := scaledDimensions(bounds.Dx(), bounds.Dy(), currentPixels, targetPixels)
	if targetPixels > currentPixels {
		width, height = clampDimensions(width, height, opts.GrowToMaxPixels)
	}
	g := gift.New(gift.Resize(width, height, gift.CubicResampling))
	dst := image.NewNRGBA(g.Bounds(bounds))
	g.Draw(dst, src)
	return dst, nil
}

// scaledDimensions keeps the aspect ratio, rounding up so the result holds at least targetPixels
func scaledDimensions(width, height, currentPixels, targetPixels int) (int, int) {
	scale := math.Sqrt(float64(targetPixels) / float64(currentPixels))
	newWidth := int(math.Ceil(float64(width) * scale))
	newHeight := int(math.Ceil(float64(height) * scale))
	return max(newWidth, 1), max(newHeight, 1)
}

// clampDimensions trims the longer side until the pixel count is at most maxPixels
func clampDimensions(width, height, maxPixels int) (int, int) {
	for width*height > maxPixels && width*height > 1 {
		if width >= height {
			width--
		} else {
			height--
		}
	}
	return width, height
}
