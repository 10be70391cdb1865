package imgpyr

import (
	"image"
	"image/color"

	"github.com/jvlmdr/go-cv/rimg64"
)

// FromImage converts an image to an intensity field in [0, 1].
// Color images are converted to 16-bit grayscale first.
func FromImage(im image.Image) *rimg64.Image {
	bnds := im.Bounds()
	f := rimg64.New(bnds.Dx(), bnds.Dy())
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			g := color.Gray16Model.Convert(im.At(bnds.Min.X+x, bnds.Min.Y+y)).(color.Gray16)
			f.Set(x, y, float64(g.Y)/float64(1<<16-1))
		}
	}
	return f
}

// ToGray16 converts an intensity field to a 16-bit grayscale image.
// Values are clipped to [0, 1].
func ToGray16(f *rimg64.Image) *image.Gray16 {
	im := image.NewGray16(image.Rect(0, 0, f.Width, f.Height))
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			v := f.At(x, y)
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			im.SetGray16(x, y, color.Gray16{Y: uint16(v*float64(1<<16-1) + 0.5)})
		}
	}
	return im
}
