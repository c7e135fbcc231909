package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"sync"

	"github.com/anthonynsimon/bild/noise"
)

// GenerateNoise returns a width×height image of random black and white
// pixels, each black with the given probability. White matches the default
// blob background, so the black pixels form a field of small blobs that is
// handy for exercising the labeller. Rows are generated in parallel, so the
// seed fixes the random stream but not which pixel receives which draw.
func GenerateNoise(width, height int, density float64, seed int64) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid noise size %dx%d", width, height)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("density %v outside [0,1]", density)
	}

	var mu sync.Mutex
	r := rand.New(rand.NewSource(seed))
	img := noise.Generate(width, height, &noise.Options{
		Monochrome: true,
		NoiseFn: func() uint8 {
			mu.Lock()
			defer mu.Unlock()
			if r.Float64() < density {
				return 0
			}
			return 255
		},
	})

	// Force full opacity so white pixels match an opaque background exactly.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img, nil
}

// CountColor returns how many pixels of img equal c exactly.
func CountColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == c.R && img.Pix[i+1] == c.G && img.Pix[i+2] == c.B && img.Pix[i+3] == c.A {
			n++
		}
	}
	return n
}
