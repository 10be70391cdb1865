package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jvlmdr/go-file/fileutil"

	"github.com/jvlmdr/go-klt/imgpyr"
	"github.com/jvlmdr/go-klt/klt"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] image.(png|jpg) features.json")
		flag.PrintDefaults()
	}
}

// Detections is the saved result of one detection pass.
type Detections struct {
	// Threshold is the trackness threshold that was applied, derived
	// from the image mean unless configured explicitly.
	Threshold float64
	Features  klt.FeatureList
}

func main() {
	var (
		levels       = flag.Int("levels", 3, "Number of pyramid levels.")
		window       = flag.Int("window", 7, "Tracking window size (odd).")
		minDist      = flag.Float64("min-dist", 10, "Minimum distance between features.")
		minTrackness = flag.Float64("min-trackness", 0, "Trackness threshold. Non-positive derives it from the image mean.")
		vis          = flag.String("vis", "", "Optional PNG to save a feature overlay to.")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	var (
		imFile  = flag.Arg(0)
		outFile = flag.Arg(1)
	)

	im, err := loadImage(imFile)
	if err != nil {
		log.Fatalln("load image:", err)
	}
	f := imgpyr.FromImage(im)
	pyr := imgpyr.New(f, *levels)

	cfg := klt.DefaultConfig()
	cfg.WindowSize = *window
	cfg.MinFeatureDist = *minDist
	cfg.MinTrackness = *minTrackness

	features, thresh := klt.Detect(pyr, cfg)
	log.Printf("detected %d features (threshold %g)", len(features), thresh)

	if err := fileutil.SaveExt(outFile, Detections{thresh, features}); err != nil {
		log.Fatalln("save features:", err)
	}
	if *vis != "" {
		if err := saveOverlay(*vis, f, features, green); err != nil {
			log.Fatalln("save overlay:", err)
		}
	}
}
