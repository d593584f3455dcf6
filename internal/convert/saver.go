package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/chai2010/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/b64webp/b64webp/internal/encode"
)

// DefaultQuality is the lossy WebP quality used when none is configured.
const DefaultQuality = 80

// Options control the WebP encoder.
type Options struct {
	Quality  int
	Lossless bool
}

func DefaultOptions() Options {
	return Options{Quality: DefaultQuality}
}

// SaveWebP decodes Base64 text into an image and writes it to outPath as WebP.
// The WebP stream is built in memory first, so outPath is only touched once
// encoding has succeeded.
func SaveWebP(text, outPath string, opts Options) error {
	data, err := encode.DecodeBase64String(encode.StripDataURL(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeBase64, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeImage, err)
	}

	var buf bytes.Buffer
	if err := encodeWebP(&buf, img, opts); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

// reportSave prints the single status line for a save attempt.
func reportSave(w io.Writer, outPath string, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s: %v\n", ReadErrorPrefix, err) // nolint:errcheck
		return
	}
	fmt.Fprintf(w, "image saved successfully to %s\n", outPath) // nolint:errcheck
}

func encodeWebP(w io.Writer, img image.Image, opts Options) error {
	q := opts.Quality
	if q < 0 {
		q = 0
	}
	if q > 100 {
		q = 100
	}
	return webp.Encode(w, img, &webp.Options{Lossless: opts.Lossless, Quality: float32(q)})
}
