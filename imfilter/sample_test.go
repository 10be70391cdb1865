package imfilter

import "testing"

func TestSampleLinear_IntegerCoords(t *testing.T) {
	f := randImage(6, 4)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			got := SampleLinear(f, float64(x), float64(y))
			if !epsEq(f.At(x, y), got, eps) {
				t.Errorf("at (%d, %d): want %g, got %g", x, y, f.At(x, y), got)
			}
		}
	}
}

func TestSampleLinear_Midpoint(t *testing.T) {
	f := randImage(4, 4)
	want := (f.At(1, 2) + f.At(2, 2) + f.At(1, 3) + f.At(2, 3)) / 4
	got := SampleLinear(f, 1.5, 2.5)
	if !epsEq(want, got, eps) {
		t.Errorf("want %g, got %g", want, got)
	}
}

func TestSampleLinear_ClampsToBorder(t *testing.T) {
	f := randImage(5, 5)
	cases := []struct {
		x, y float64
		want float64
	}{
		{-2, -3, f.At(0, 0)},
		{10, 2, f.At(4, 2)},
		{2, 100, f.At(2, 4)},
	}
	for _, c := range cases {
		got := SampleLinear(f, c.x, c.y)
		if !epsEq(c.want, got, eps) {
			t.Errorf("at (%g, %g): want %g, got %g", c.x, c.y, c.want, got)
		}
	}
}

func TestGradients_Ramp(t *testing.T) {
	// f(x, y) = 2x - 3y has constant derivatives.
	f := randImage(8, 8)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			f.Set(x, y, 2*float64(x)-3*float64(y))
		}
	}
	gx, gy := Gradients(f)
	for x := 0; x < f.Width; x++ {
		for y := 0; y < f.Height; y++ {
			if !epsEq(2, gx.At(x, y), eps) {
				t.Errorf("gx at (%d, %d): want 2, got %g", x, y, gx.At(x, y))
			}
			if !epsEq(-3, gy.At(x, y), eps) {
				t.Errorf("gy at (%d, %d): want -3, got %g", x, y, gy.At(x, y))
			}
		}
	}
}
