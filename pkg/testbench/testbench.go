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

// Package testbench sweeps a sine kernel across a range of angles and counts
// the samples that stray from a reference beyond the configured tolerance.
package testbench

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
	"github.com/matrixorigin/taylorsin/pkg/logutil"
)

// Sample is one evaluated angle.
type Sample struct {
	Index    int
	Degrees  float64
	X        float64
	Want     float64
	Got      float64
	Diff     float64
	Mismatch bool
}

// Report holds the samples of a run in sweep order.
type Report struct {
	DUT       string
	Reference string
	Samples   []Sample
	// Failures holds the index of every mismatching sample.
	Failures *roaring.Bitmap
}

// ErrorCount is the number of samples outside the tolerance.
func (r *Report) ErrorCount() int {
	return int(r.Failures.GetCardinality())
}

// Failed reports whether sample k is outside the tolerance.
func (r *Report) Failed(k int) bool {
	return r.Failures.Contains(uint32(k))
}

func (r *Report) MaxAbsError() float64 {
	var m float64
	for _, s := range r.Samples {
		if s.Diff > m || math.IsNaN(s.Diff) {
			m = s.Diff
		}
	}
	return m
}

func (r *Report) Summary() string {
	return fmt.Sprintf("%s vs %s: %d samples, %d errors, max abs error %g",
		r.DUT, r.Reference, len(r.Samples), r.ErrorCount(), r.MaxAbsError())
}

var reportSample = func(ctx context.Context, s Sample) {
	logutil.Debug(ctx, "sine sample",
		zap.Float64("degrees", s.Degrees),
		zap.Float64("expected", s.Want),
		zap.Float64("got", s.Got),
		zap.Bool("mismatch", s.Mismatch))
}

// Run evaluates dut and ref at every angle of cfg on a pool of cfg.Workers
// goroutines. The first kernel error cancels the remaining samples and is
// returned.
func Run(ctx context.Context, cfg SweepConfig, dut, ref Kernel) (*Report, error) {
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	ctx = logutil.ContextWithFields(ctx,
		zap.String("dut", dut.Name()),
		zap.String("reference", ref.Name()))

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, moerr.NewInternalError(ctx, "create sweep pool: %v", err)
	}
	defer pool.Release()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	setErr := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	angles := cfg.Angles()
	samples := make([]Sample, len(angles))
	for k := range angles {
		if err := runCtx.Err(); err != nil {
			setErr(err)
			break
		}
		k := k
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := runCtx.Err(); err != nil {
				setErr(err)
				return
			}
			s, err := evalSample(runCtx, &cfg, dut, ref, k)
			if err != nil {
				setErr(err)
				return
			}
			samples[k] = s
		}); err != nil {
			wg.Done()
			setErr(moerr.NewInternalError(ctx, "submit sample %d: %v", k, err))
			break
		}
	}
	wg.Wait()
	if err := runCtx.Err(); err != nil {
		// a cancelled run has unevaluated samples and must not report
		setErr(err)
	}
	if firstErr != nil {
		logutil.Error(ctx, "sweep aborted", zap.Error(firstErr))
		return nil, firstErr
	}

	report := &Report{
		DUT:       dut.Name(),
		Reference: ref.Name(),
		Samples:   samples,
		Failures:  roaring.NewBitmap(),
	}
	for _, s := range samples {
		if s.Mismatch {
			report.Failures.Add(uint32(s.Index))
		}
		reportSample(ctx, s)
	}
	logutil.Info(ctx, "sweep finished",
		zap.Int("samples", len(samples)),
		zap.Int("errors", report.ErrorCount()),
		zap.Float64("max-abs-error", report.MaxAbsError()))
	return report, nil
}

func evalSample(ctx context.Context, cfg *SweepConfig, dut, ref Kernel, k int) (Sample, error) {
	x := cfg.Radians(k)
	got, err := dut.Eval(ctx, x)
	if err != nil {
		return Sample{}, fmt.Errorf("%s at %v: %w", dut.Name(), x, err)
	}
	want, err := ref.Eval(ctx, x)
	if err != nil {
		return Sample{}, fmt.Errorf("%s at %v: %w", ref.Name(), x, err)
	}
	if math.IsNaN(want) || math.IsInf(want, 0) {
		return Sample{}, moerr.NewInvalidInput(ctx, "%s returned %v at %v", ref.Name(), want, x)
	}
	if math.IsNaN(got) {
		logutil.Warn(ctx, "dut returned NaN", zap.Float64("x", x))
	}
	return Sample{
		Index:    k,
		Degrees:  cfg.Degrees(k),
		X:        x,
		Want:     want,
		Got:      got,
		Diff:     math.Abs(got - want),
		Mismatch: cfg.Mismatch(got, want),
	}, nil
}
