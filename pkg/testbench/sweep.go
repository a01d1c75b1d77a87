// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testbench

import (
	"context"
	"math"
	"runtime"

	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
)

const (
	defaultStopDegrees       = 90
	defaultStepDegrees       = 5
	defaultRelativeTolerance = 0.001
	defaultAbsoluteTolerance = 1e-12

	maxSamples = 1 << 20
)

// SweepConfig describes the angles a run visits and how close the DUT must
// stay to the reference. Zero values are replaced by defaults in Validate.
type SweepConfig struct {
	StartDegrees float64 `toml:"start-degrees"`
	// StopDegrees is inclusive: a stop that is a whole number of steps past
	// start is itself sampled, unlike a `x < stop` loop. default 90
	StopDegrees float64 `toml:"stop-degrees"`
	// default 5
	StepDegrees float64 `toml:"step-degrees"`
	// Pi converts degrees to radians. default math.Pi
	Pi float64 `toml:"pi"`
	// RelativeTolerance is scaled by |reference|. default 0.001
	RelativeTolerance float64 `toml:"relative-tolerance"`
	// AbsoluteTolerance is the floor used where the reference is near zero.
	// default 1e-12
	AbsoluteTolerance float64 `toml:"absolute-tolerance"`
	// Workers is the size of the evaluation pool. default runtime.NumCPU()
	Workers int `toml:"workers"`
}

// Validate fills defaults and rejects configurations no sweep can run with.
func (c *SweepConfig) Validate(ctx context.Context) error {
	if c.StopDegrees == 0 {
		c.StopDegrees = defaultStopDegrees
	}
	if c.StepDegrees == 0 {
		c.StepDegrees = defaultStepDegrees
	}
	if c.Pi == 0 {
		c.Pi = math.Pi
	}
	if c.RelativeTolerance == 0 {
		c.RelativeTolerance = defaultRelativeTolerance
	}
	if c.AbsoluteTolerance == 0 {
		c.AbsoluteTolerance = defaultAbsoluteTolerance
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}

	for name, v := range map[string]float64{
		"start-degrees":      c.StartDegrees,
		"stop-degrees":       c.StopDegrees,
		"step-degrees":       c.StepDegrees,
		"pi":                 c.Pi,
		"relative-tolerance": c.RelativeTolerance,
		"absolute-tolerance": c.AbsoluteTolerance,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return moerr.NewBadConfig(ctx, "sweep %s must be finite, got %v", name, v)
		}
	}
	switch {
	case c.StepDegrees < 0:
		return moerr.NewBadConfig(ctx, "sweep step-degrees must be positive, got %v", c.StepDegrees)
	case c.StopDegrees < c.StartDegrees:
		return moerr.NewBadConfig(ctx, "sweep stop-degrees %v is below start-degrees %v", c.StopDegrees, c.StartDegrees)
	case c.Pi < 0:
		return moerr.NewBadConfig(ctx, "sweep pi must be positive, got %v", c.Pi)
	case c.RelativeTolerance < 0 || c.AbsoluteTolerance < 0:
		return moerr.NewBadConfig(ctx, "sweep tolerances must not be negative")
	case c.Workers < 0:
		return moerr.NewBadConfig(ctx, "sweep workers must be positive, got %d", c.Workers)
	}
	// checked before the int conversion, which wraps on huge spans
	if n := c.sampleSpan() + 1; n > maxSamples {
		return moerr.NewBadConfig(ctx, "sweep has %g samples, limit is %d", n, maxSamples)
	}
	return nil
}

// sampleSpan is the number of steps between start and stop.
func (c *SweepConfig) sampleSpan() float64 {
	// the epsilon keeps an exact multiple of the step from losing its last sample
	return math.Floor((c.StopDegrees-c.StartDegrees)/c.StepDegrees + 1e-9)
}

func (c *SweepConfig) sampleCount() int {
	return int(c.sampleSpan()) + 1
}

// Degrees returns the angle of sample k.
func (c *SweepConfig) Degrees(k int) float64 {
	return c.StartDegrees + float64(k)*c.StepDegrees
}

// Radians returns the angle of sample k in radians.
func (c *SweepConfig) Radians(k int) float64 {
	return c.Degrees(k) * c.Pi / 180
}

// Angles returns every sample angle in radians. Each angle is derived from
// its index so rounding does not accumulate along the sweep.
func (c *SweepConfig) Angles() []float64 {
	n := c.sampleCount()
	xs := make([]float64, n)
	for k := range xs {
		xs[k] = c.Radians(k)
	}
	return xs
}

// Mismatch reports whether got is further from want than the tolerance.
func (c *SweepConfig) Mismatch(got, want float64) bool {
	diff := math.Abs(got - want)
	return math.IsNaN(diff) || diff > math.Max(c.RelativeTolerance*math.Abs(want), c.AbsoluteTolerance)
}
