package montecarlo

import (
	"fmt"
	"math"
	"math/rand"
)

// Distribution samples one evidence scalar. Samples are clamped to [0,1]
// by the runner before they reach the engine.
type Distribution interface {
	Sample(r *rand.Rand) float64
}

// Uniform samples uniformly from [Min, Max].
type Uniform struct {
	Min, Max float64
}

func (d Uniform) Sample(r *rand.Rand) float64 {
	return d.Min + r.Float64()*(d.Max-d.Min)
}

// Normal samples from a normal distribution; out-of-range draws are
// clipped rather than resampled so the draw count stays deterministic.
type Normal struct {
	Mean, StdDev float64
}

func (d Normal) Sample(r *rand.Rand) float64 {
	return r.NormFloat64()*d.StdDev + d.Mean
}

// Triangular samples from a triangular distribution with the given mode.
type Triangular struct {
	Min, Mode, Max float64
}

func (d Triangular) Sample(r *rand.Rand) float64 {
	span := d.Max - d.Min
	if span <= 0 {
		return d.Min
	}
	u := r.Float64()
	cut := (d.Mode - d.Min) / span
	if u < cut {
		return d.Min + math.Sqrt(u*span*(d.Mode-d.Min))
	}
	return d.Max - math.Sqrt((1-u)*span*(d.Max-d.Mode))
}

// Fixed always returns the same value; useful for holding one input
// constant while the others vary.
type Fixed struct {
	Value float64
}

func (d Fixed) Sample(*rand.Rand) float64 { return d.Value }

// ParseDistribution parses a CLI-style distribution spec:
// "uniform:min,max", "normal:mean,stddev", "triangular:min,mode,max",
// or a bare number for a fixed value.
func ParseDistribution(s string) (Distribution, error) {
	var kind string
	var a, b, c float64

	if n, err := fmt.Sscanf(s, "uniform:%f,%f", &a, &b); err == nil && n == 2 {
		kind = "uniform"
	} else if n, err := fmt.Sscanf(s, "normal:%f,%f", &a, &b); err == nil && n == 2 {
		kind = "normal"
	} else if n, err := fmt.Sscanf(s, "triangular:%f,%f,%f", &a, &b, &c); err == nil && n == 3 {
		kind = "triangular"
	} else if n, err := fmt.Sscanf(s, "%f", &a); err == nil && n == 1 {
		kind = "fixed"
	} else {
		return nil, fmt.Errorf("unrecognized distribution spec %q", s)
	}

	switch kind {
	case "uniform":
		if a > b {
			return nil, fmt.Errorf("uniform spec %q: min above max", s)
		}
		return Uniform{Min: a, Max: b}, nil
	case "normal":
		if b < 0 {
			return nil, fmt.Errorf("normal spec %q: negative stddev", s)
		}
		return Normal{Mean: a, StdDev: b}, nil
	case "triangular":
		if a > b || b > c {
			return nil, fmt.Errorf("triangular spec %q: requires min <= mode <= max", s)
		}
		return Triangular{Min: a, Mode: b, Max: c}, nil
	default:
		return Fixed{Value: a}, nil
	}
}
