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
	"fmt"
	"math"

	"github.com/matrixorigin/taylorsin/pkg/vectorize/taylorsin"
)

//go:generate mockgen -source=kernel.go -destination=test/mock_kernel.go -package=mock_testbench

// Kernel is a single-argument function under comparison, either the design
// under test or the reference it is checked against.
type Kernel interface {
	Name() string
	Eval(ctx context.Context, x float64) (float64, error)
}

type seriesKernel struct {
	name  string
	order int
	fn    func(float64, int) (float64, error)
}

// NewTaylorKernel evaluates taylorsin.ApproximateSine at the given order.
func NewTaylorKernel(order int) Kernel {
	return &seriesKernel{
		name:  fmt.Sprintf("taylor(order=%d)", order),
		order: order,
		fn:    taylorsin.ApproximateSine,
	}
}

// NewAlternatingKernel evaluates taylorsin.AlternatingSine at the given order.
func NewAlternatingKernel(order int) Kernel {
	return &seriesKernel{
		name:  fmt.Sprintf("alternating(order=%d)", order),
		order: order,
		fn:    taylorsin.AlternatingSine,
	}
}

func (k *seriesKernel) Name() string {
	return k.name
}

func (k *seriesKernel) Eval(_ context.Context, x float64) (float64, error) {
	return k.fn(x, k.order)
}

type stdSine struct{}

// StdSine is the reference kernel backed by math.Sin.
var StdSine Kernel = stdSine{}

func (stdSine) Name() string {
	return "math.Sin"
}

func (stdSine) Eval(_ context.Context, x float64) (float64, error) {
	return math.Sin(x), nil
}
