package labelling

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch reports a buffer whose length does not match its
	// declared width and height.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrNoOutputAvailable reports a read of session output before any call
	// has completed successfully.
	ErrNoOutputAvailable = errors.New("no output available")
)

// checkDimensions verifies that a buffer of length n holds width*height
// pixels of bytesPerPixel bytes each.
func checkDimensions(n, width, height, bytesPerPixel int) error {
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrDimensionMismatch, "negative dimensions %dx%d", width, height)
	}
	// Divide rather than multiply so huge dimensions cannot overflow.
	ok := n%bytesPerPixel == 0
	if ok {
		pixels := n / bytesPerPixel
		if width == 0 || height == 0 {
			ok = pixels == 0
		} else {
			ok = pixels%width == 0 && pixels/width == height
		}
	}
	if !ok {
		return errors.Wrapf(ErrDimensionMismatch, "buffer length %d does not hold %dx%d pixels of %d bytes", n, width, height, bytesPerPixel)
	}
	return nil
}
