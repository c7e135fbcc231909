package labelling

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/segment"
)

// Binarize reduces an RGBA buffer to a mask. A pixel is background only when
// all four channels equal the background color; anything else is foreground.
func Binarize(pix []byte, width, height int, background color.RGBA) (*Mask, error) {
	if err := checkDimensions(len(pix), width, height, 4); err != nil {
		return nil, err
	}

	mask := NewMask(width, height)
	for i := range mask.Pix {
		o := i * 4
		if pix[o] == background.R && pix[o+1] == background.G &&
			pix[o+2] == background.B && pix[o+3] == background.A {
			continue
		}
		mask.Pix[i] = Foreground
	}
	return mask, nil
}

// ThresholdMask builds a mask from the grayscale luminance of img: pixels
// darker than level are foreground. This suits scanned or photographed inputs
// where the background is not one exact color.
func ThresholdMask(img image.Image, level uint8) *Mask {
	gray := segment.Threshold(img, level)
	b := gray.Bounds()
	mask := NewMask(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for x, v := range row {
			// Threshold paints pixels at or above level white.
			if v == 0 {
				mask.Pix[y*b.Dx()+x] = Foreground
			}
		}
	}
	return mask
}
