/*
Package imgpyr builds multi-resolution image pyramids with per-level
gradient fields for coarse-to-fine tracking.

Level 0 is the input image at full resolution. Each coarser level halves
the previous one by bilinear resampling. Every level carries its intensity
field and the horizontal and vertical gradients of that field, all
immutable once the pyramid is built.
*/
package imgpyr

import (
	"github.com/nfnt/resize"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-klt/imfilter"
)

// Level is one resolution tier of a pyramid.
type Level struct {
	Image *rimg64.Image
	// Horizontal and vertical gradients of Image.
	GradX *rimg64.Image
	GradY *rimg64.Image
}

// Pyramid is an ordered list of levels, finest first.
type Pyramid struct {
	Levels []Level
}

// Interp is the resampling kernel used to build coarser levels.
var Interp = resize.Bilinear

// New builds a pyramid of the given number of levels.
// Panics if levels is not positive or the coarsest level would collapse
// below 2x2 pixels.
func New(im *rimg64.Image, levels int) *Pyramid {
	if levels < 1 {
		panic("number of levels is not positive")
	}
	pyr := &Pyramid{Levels: make([]Level, levels)}
	for i := 0; i < levels; i++ {
		if im.Width < 2 || im.Height < 2 {
			panic("pyramid level is smaller than 2x2")
		}
		gx, gy := imfilter.Gradients(im)
		pyr.Levels[i] = Level{Image: im, GradX: gx, GradY: gy}
		if i+1 < levels {
			im = downsample(im)
		}
	}
	return pyr
}

// NumLevels gives the number of levels in the pyramid.
func (pyr *Pyramid) NumLevels() int { return len(pyr.Levels) }

// Level accesses level i, with 0 the finest.
func (pyr *Pyramid) Level(i int) Level { return pyr.Levels[i] }

func downsample(f *rimg64.Image) *rimg64.Image {
	w, h := (f.Width+1)/2, (f.Height+1)/2
	small := resize.Resize(uint(w), uint(h), ToGray16(f), Interp)
	return FromImage(small)
}
