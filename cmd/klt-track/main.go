package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jvlmdr/go-cv/rimg64"
	"github.com/jvlmdr/go-file/fileutil"

	"github.com/jvlmdr/go-klt/imgpyr"
	"github.com/jvlmdr/go-klt/klt"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] image1.(png|jpg) image2.(png|jpg) tracks.json")
		flag.PrintDefaults()
	}
}

// Tracks pairs the features detected in the first image with their
// positions in the second, in the same order, plus per-feature status.
type Tracks struct {
	Threshold float64
	Features1 klt.FeatureList
	Features2 klt.FeatureList
	Status    []klt.Status
}

func main() {
	var (
		levels       = flag.Int("levels", 3, "Number of pyramid levels.")
		window       = flag.Int("window", 7, "Tracking window size (odd).")
		minDist      = flag.Float64("min-dist", 10, "Minimum distance between features.")
		minTrackness = flag.Float64("min-trackness", 0, "Trackness threshold. Non-positive derives it from the image mean.")
		maxIter      = flag.Int("max-iter", 16, "Maximum solver iterations per level.")
		minDet       = flag.Float64("min-det", 1e-6, "Minimum determinant of the tracking matrix.")
		minUpdate    = flag.Float64("min-update", 1e-6, "Squared update norm declaring convergence.")
		aligned      = flag.Bool("aligned", false, "Track on whole pixels without interpolation.")
		vis          = flag.String("vis", "", "Optional PNG to save an overlay of the tracked features to.")
	)
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		imFile1 = flag.Arg(0)
		imFile2 = flag.Arg(1)
		outFile = flag.Arg(2)
	)

	cfg := klt.DefaultConfig()
	cfg.WindowSize = *window
	cfg.MinFeatureDist = *minDist
	cfg.MinTrackness = *minTrackness
	cfg.MaxIterations = *maxIter
	cfg.MinDeterminant = *minDet
	cfg.MinUpdateDist2 = *minUpdate
	if *aligned {
		cfg.Mode = klt.Aligned
	}

	pyr1, _, err := loadPyramid(imFile1, *levels)
	if err != nil {
		log.Fatalln("load first image:", err)
	}
	pyr2, f2, err := loadPyramid(imFile2, *levels)
	if err != nil {
		log.Fatalln("load second image:", err)
	}

	features1, thresh := klt.Detect(pyr1, cfg)
	log.Printf("detected %d features (threshold %g)", len(features1), thresh)
	features2, status := klt.Track(pyr1, features1, pyr2, cfg)

	var converged int
	for _, s := range status {
		if s.Converged {
			converged++
		}
	}
	log.Printf("tracked %d features, %d converged", len(features2), converged)

	if err := fileutil.SaveExt(outFile, Tracks{thresh, features1, features2, status}); err != nil {
		log.Fatalln("save tracks:", err)
	}
	if *vis != "" {
		if err := saveOverlay(*vis, f2, features2, green); err != nil {
			log.Fatalln("save overlay:", err)
		}
	}
}

func loadPyramid(name string, levels int) (*imgpyr.Pyramid, *rimg64.Image, error) {
	im, err := loadImage(name)
	if err != nil {
		return nil, nil, err
	}
	f := imgpyr.FromImage(im)
	return imgpyr.New(f, levels), f, nil
}
