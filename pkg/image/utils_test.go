package image

import (
	"fmt"
	"testing"

	"blindsteg/pkg/config"
	"blindsteg/test"
)

const testImageSize = 200

type testFunc func(t *testing.T, LSBsToUse config.BitWidth, randomizePixelOpaqueness bool)

func runImageTestsWithAllLSBsAndOpaquenessSettings(t *testing.T, testFunc testFunc) {
	for LSBsToUse := config.BitWidth(1); LSBsToUse <= config.MaxBitWidth; LSBsToUse++ {
		LSBsToUseCopy := LSBsToUse
		t.Run(fmt.Sprintf("LSBsToUse-%d", LSBsToUse), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, LSBsToUseCopy, false)
			})
			t.Run("non-opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, LSBsToUseCopy, true)
			})
		})
	}
}

func generateImage(width, height int, randomizePixelOpaqueness bool) *Image {
	return FromImage(test.GenerateImage(width, height, randomizePixelOpaqueness))
}

func cloneImage(img *Image) *Image {
	clone, err := New(img.Width(), img.Height(), img.Format(), append([]byte(nil), img.Pix()...))
	if err != nil {
		panic(err)
	}
	return clone
}

func getOpaquenessLabel(randomizeOpaqueness bool) string {
	if randomizeOpaqueness {
		return "non-opaque"
	}
	return "opaque"
}
