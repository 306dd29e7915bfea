package test

import (
	"image"
	"image/color"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateImage builds an image with random colors. When randomizePixelOpaqueness is set some pixels get a random
// alpha, otherwise every pixel is fully opaque.
func GenerateImage(width, height int, randomizePixelOpaqueness bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizePixelOpaqueness && rand.Intn(4) == 0 {
				alpha = randUint8()
			}
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: alpha})
		}
	}
	if randomizePixelOpaqueness {
		// Guarantee at least one translucent pixel
		img.Pix[3] = 128
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
