package main

import (
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/jvlmdr/go-cv/rimg64"

	"github.com/jvlmdr/go-klt/klt"
)

var green = [3]float64{0, 1, 0}

func loadImage(name string) (image.Image, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return im, nil
}

// saveOverlay writes the intensity field as PNG with features marked.
func saveOverlay(name string, f *rimg64.Image, features klt.FeatureList, color [3]float64) error {
	im := rimg64.NewMulti(f.Width, f.Height, 3)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			for k := 0; k < 3; k++ {
				im.Set(x, y, k, f.At(x, y))
			}
		}
	}
	klt.DrawFeatures(im, features, color)
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, toRGBA(im))
}

func toRGBA(im *rimg64.Multi) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for x := 0; x < im.Width; x++ {
		for y := 0; y < im.Height; y++ {
			i := dst.PixOffset(x, y)
			for k := 0; k < 3; k++ {
				dst.Pix[i+k] = quantize(im.At(x, y, k))
			}
			dst.Pix[i+3] = 0xff
		}
	}
	return dst
}

func quantize(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*0xff + 0.5)
}
