package labelling

import (
	"image/color"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultBackground is the background color used when Options leaves it
// unset: opaque white.
var DefaultBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Options configures a Finder.
type Options struct {
	// Background is the exact color treated as background. The zero value
	// selects DefaultBackground; use UseTransparentBackground to make fully
	// transparent pixels the background.
	Background color.RGBA

	// UseTransparentBackground selects {0,0,0,0} as the background color.
	UseTransparentBackground bool

	// InitialTableSize is the color table size before any image is
	// processed. Zero selects DefaultTableSize.
	InitialTableSize int

	// Random supplies table colors. Nil selects a time-seeded math/rand source.
	Random RandomSource

	// Log receives debug output. Nil selects the logrus standard logger.
	Log logrus.FieldLogger
}

// Result is the outcome of one Process call. Its buffers belong to the
// Finder and are replaced by the next successful call.
type Result struct {
	Width  int
	Height int

	// Count is the number of blobs found.
	Count int

	Labels *LabelRaster

	// Output is the colorized RGBA buffer.
	Output []byte
}

// Finder is one blob-finding session. It owns a color table and the result
// of the last successful Process call.
type Finder struct {
	background color.RGBA
	table      *ColorTable
	log        logrus.FieldLogger
	last       *Result
}

// NewFinder creates a session with a freshly generated color table.
func NewFinder(opts Options) *Finder {
	bg := opts.Background
	if opts.UseTransparentBackground {
		bg = Transparent
	} else if bg == (color.RGBA{}) {
		bg = DefaultBackground
	}
	size := opts.InitialTableSize
	if size <= 0 {
		size = DefaultTableSize
	}
	src := opts.Random
	if src == nil {
		src = NewRandSource(time.Now().UnixNano())
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Finder{
		background: bg,
		table:      NewColorTable(size, src),
		log:        log,
	}
}

// Background returns the color treated as background.
func (f *Finder) Background() color.RGBA {
	return f.background
}

// Process finds the blobs in an RGBA buffer of width×height pixels and
// renders them with the session colors. On error the previous result is
// kept.
func (f *Finder) Process(width, height int, pix []byte) (*Result, error) {
	start := time.Now()

	mask, err := Binarize(pix, width, height, f.background)
	if err != nil {
		return nil, errors.Wrap(err, "binarize")
	}
	return f.finish(mask, start), nil
}

// ProcessMask runs the labelling stages on a prepared mask, for inputs
// binarized some other way (see ThresholdMask).
func (f *Finder) ProcessMask(mask *Mask) (*Result, error) {
	if err := checkDimensions(len(mask.Pix), mask.Width, mask.Height, 1); err != nil {
		return nil, errors.Wrap(err, "mask")
	}
	return f.finish(mask, time.Now()), nil
}

func (f *Finder) finish(mask *Mask, start time.Time) *Result {
	labels := Label(mask)

	prev := f.table.Len()
	if f.table.EnsureCapacity(labels.Count + 1) {
		f.log.WithFields(logrus.Fields{
			"from": prev,
			"to":   f.table.Len(),
		}).Debug("color table regenerated")
	}

	res := &Result{
		Width:  mask.Width,
		Height: mask.Height,
		Count:  labels.Count,
		Labels: labels,
		Output: Remap(labels, f.table),
	}
	f.last = res

	f.log.WithFields(logrus.Fields{
		"width":   mask.Width,
		"height":  mask.Height,
		"blobs":   labels.Count,
		"elapsed": time.Since(start),
	}).Debug("processed image")
	return res
}

// Output returns the colorized buffer of the last successful call.
func (f *Finder) Output() ([]byte, error) {
	if f.last == nil {
		return nil, ErrNoOutputAvailable
	}
	return f.last.Output, nil
}

// Last returns the last successful result.
func (f *Finder) Last() (*Result, error) {
	if f.last == nil {
		return nil, ErrNoOutputAvailable
	}
	return f.last, nil
}

// Components measures the blobs of the last successful result.
func (f *Finder) Components() ([]Component, error) {
	if f.last == nil {
		return nil, ErrNoOutputAvailable
	}
	return Components(f.last.Labels, f.table), nil
}

// Palette returns a copy of the current color table.
func (f *Finder) Palette() []color.RGBA {
	return f.table.Colors()
}
