package klt

// Mode selects how patch sums are accumulated during tracking.
type Mode int

const (
	// Interpolated samples intensity and gradients bilinearly, giving
	// sub-pixel positions. This is the default.
	Interpolated Mode = iota
	// Aligned restricts positions and patch offsets to whole pixels.
	// No interpolation is performed and a patch which reaches outside
	// the image aborts refinement at that level.
	Aligned
)

// Config holds the detection and tracking parameters.
// The zero threshold fields fall back to the defaults below; a Config is
// a plain value and is never modified by this package.
type Config struct {
	// WindowSize is the full (odd) side of the tracking window.
	WindowSize int
	// MinTrackness is the detection threshold. If it is not positive,
	// Detect derives the threshold from the mean trackness of the image
	// being processed and returns the derived value.
	MinTrackness float64
	// MinFeatureDist is the minimum distance between detected features.
	MinFeatureDist float64
	// MaxIterations caps the solver iterations per pyramid level.
	MaxIterations int
	// MinDeterminant declares the tracking system degenerate below it.
	MinDeterminant float64
	// MinUpdateDist2 is the squared update norm under which the
	// interpolated-mode iteration is considered converged.
	MinUpdateDist2 float64
	// Mode selects the patch accumulation strategy.
	Mode Mode
}

// DefaultConfig gives the standard tracking parameters.
func DefaultConfig() Config {
	return Config{
		WindowSize:     7,
		MinFeatureDist: 10,
		MaxIterations:  16,
		MinDeterminant: 1e-6,
		MinUpdateDist2: 1e-6,
		Mode:           Interpolated,
	}
}

func (cfg Config) halfWindow() int { return cfg.WindowSize / 2 }
