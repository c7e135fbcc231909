package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// ToRGBA flattens img into a raw RGBA buffer with a zero origin.
func ToRGBA(img image.Image) (width, height int, pix []byte) {
	n := imaging.Clone(img)
	return n.Rect.Dx(), n.Rect.Dy(), n.Pix
}

// FromRGBA wraps a raw RGBA buffer as an image without copying it.
func FromRGBA(width, height int, pix []byte) (*image.NRGBA, error) {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("buffer length %d does not match %dx%d RGBA", len(pix), width, height)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// EncodePNGBase64 encodes img as a base64 PNG string.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// SavePNG writes img to path as a PNG file.
func SavePNG(img image.Image, path string) error {
	if err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestSpeed)); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
