package image

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"time"

	"blindsteg/pkg/config"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads any registered image format (png, jpeg, gif, bmp, tiff, webp) into a pixel buffer. Lossy inputs are
// fine as carriers, but the result must always be written back with a lossless format.
func Decode(r io.Reader) (*Image, string, error) {
	srcImage, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	// TODO: Work with 16-bit images, they are currently narrowed to 8 bits per channel
	return FromImage(srcImage), format, nil
}

func DecodeFile(filePath string) (*Image, string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Encode writes the image in a lossless format
func (i *Image) Encode(w io.Writer, out config.OutputConfig) error {
	imageEncodeStart := time.Now()
	defer func() {
		i.insertStats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()

	img := i.ToImage()
	switch out.Format {
	case config.OutputPNG, "":
		enc := png.Encoder{CompressionLevel: out.PngCompressionLevel}
		return enc.Encode(w, img)
	case config.OutputBMP:
		return bmp.Encode(w, img)
	case config.OutputTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, out.Format)
}

func (i *Image) EncodeFile(filePath string, out config.OutputConfig) (err error) {
	outputFile, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := outputFile.Close(); err == nil {
			err = closeErr
		}
		// partial output is removed
		if err != nil {
			_ = os.Remove(filePath)
		}
	}()

	bw := bufio.NewWriter(outputFile)
	if err = i.Encode(bw, out); err != nil {
		return err
	}
	return bw.Flush()
}
