// Package dataset generates the toy 2D classification datasets used by the
// training demo. Each generator draws n points uniformly from the unit
// square and labels them 0/1 by a fixed rule, so a small scalar MLP can be
// trained and inspected end to end.
package dataset

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Dataset is a labeled set of 2D points.
type Dataset struct {
	Name string
	X    [][2]float64 // Points in the unit square
	Y    []int        // Binary labels, one per point
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.X)
}

// Simple labels points left of the vertical midline.
func Simple(n int, seed int64) *Dataset {
	return generate("simple", n, seed, func(x1, x2 float64) bool {
		return x1 < 0.5
	})
}

// Diag labels points below the main diagonal.
func Diag(n int, seed int64) *Dataset {
	return generate("diag", n, seed, func(x1, x2 float64) bool {
		return x1+x2 < 0.5
	})
}

// Split labels points in the outer vertical bands. Not linearly separable.
func Split(n int, seed int64) *Dataset {
	return generate("split", n, seed, func(x1, x2 float64) bool {
		return x1 < 0.2 || x1 > 0.8
	})
}

// Xor labels points in the off-diagonal quadrants. Not linearly separable.
func Xor(n int, seed int64) *Dataset {
	return generate("xor", n, seed, func(x1, x2 float64) bool {
		return (x1 < 0.5 && x2 > 0.5) || (x1 > 0.5 && x2 < 0.5)
	})
}

// Generate builds the named dataset. Known names: simple, diag, split, xor.
func Generate(name string, n int, seed int64) (*Dataset, error) {
	if n <= 0 {
		return nil, errors.Errorf("dataset: point count must be positive, got %d", n)
	}
	switch name {
	case "simple":
		return Simple(n, seed), nil
	case "diag":
		return Diag(n, seed), nil
	case "split":
		return Split(n, seed), nil
	case "xor":
		return Xor(n, seed), nil
	}
	return nil, errors.Errorf("dataset: unknown dataset %q (want simple, diag, split or xor)", name)
}

func generate(name string, n int, seed int64, label func(x1, x2 float64) bool) *Dataset {
	rng := rand.New(rand.NewSource(seed))

	d := &Dataset{
		Name: name,
		X:    make([][2]float64, n),
		Y:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		x1, x2 := rng.Float64(), rng.Float64()
		d.X[i] = [2]float64{x1, x2}
		if label(x1, x2) {
			d.Y[i] = 1
		}
	}
	return d
}
