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

// Package taylorsin approximates sine with a truncated Maclaurin series.
//
// The series is summed as two independent groups: terms of power 1, 5, 9, ...
// are added to one accumulator and terms of power 3, 7, 11, ... to another,
// and the second is subtracted from the first at the end. Results therefore
// round differently from a single running signed sum; AlternatingSine gives
// that single-accumulator form for comparison.
package taylorsin

import (
	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
	"github.com/matrixorigin/taylorsin/pkg/vectorize/factorial"
	"github.com/matrixorigin/taylorsin/pkg/vectorize/power"
)

// DefaultOrder is the highest power summed by Sin and the batch functions.
const DefaultOrder = 20

var (
	sinFloat32 func([]float32, []float64) []float64
	sinFloat64 func([]float64, []float64) []float64
)

func init() {
	sinFloat32 = sinFloat32Pure
	sinFloat64 = sinFloat64Pure
}

// ApproximateSine sums the Maclaurin terms x^i/i! for every odd i <= order.
// x is in radians and is not range reduced, so accuracy falls off as |x|
// grows. An order of 0 sums nothing and returns 0.
func ApproximateSine(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, moerr.NewInvalidArgNoCtx("sine order", order)
	}
	sumPositive := 0.0
	sumNegative := 0.0
	for i := 1; i <= order; i += 4 {
		t, err := term(x, i)
		if err != nil {
			return 0, err
		}
		sumPositive = sumPositive + t
		if i+2 > order {
			break
		}
		if t, err = term(x, i+2); err != nil {
			return 0, err
		}
		sumNegative = sumNegative + t
	}
	return sumPositive - sumNegative, nil
}

// AlternatingSine sums the same terms as ApproximateSine into one
// accumulator, flipping the sign at every term.
func AlternatingSine(x float64, order int) (float64, error) {
	if order < 0 {
		return 0, moerr.NewInvalidArgNoCtx("sine order", order)
	}
	sum := 0.0
	sign := 1.0
	for i := 1; i <= order; i += 2 {
		t, err := term(x, i)
		if err != nil {
			return 0, err
		}
		sum = sum + sign*t
		sign = -sign
	}
	return sum, nil
}

// Sin is ApproximateSine at DefaultOrder.
func Sin(x float64) float64 {
	r, _ := ApproximateSine(x, DefaultOrder)
	return r
}

func term(x float64, i int) (float64, error) {
	num, err := power.Power(x, i)
	if err != nil {
		return 0, err
	}
	den, err := factorial.Factorial(i)
	if err != nil {
		return 0, err
	}
	return num / den, nil
}

func SinFloat32(xs []float32, rs []float64) []float64 {
	return sinFloat32(xs, rs)
}

func sinFloat32Pure(xs []float32, rs []float64) []float64 {
	for i, n := range xs {
		rs[i] = Sin(float64(n))
	}
	return rs
}

func SinFloat64(xs []float64, rs []float64) []float64 {
	return sinFloat64(xs, rs)
}

func sinFloat64Pure(xs []float64, rs []float64) []float64 {
	for i, n := range xs {
		rs[i] = Sin(n)
	}
	return rs
}
