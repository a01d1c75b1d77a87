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

package power

import (
	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
)

var (
	powerFloat64 func([]float64, int, []float64) ([]float64, error)
)

func init() {
	powerFloat64 = powerFloat64Pure
}

// Power returns x multiplied by itself n times. The multiplication is done
// one factor at a time, which fixes the rounding of every intermediate
// product; Power(x, 0) is 1 for any x.
func Power(x float64, n int) (float64, error) {
	if n < 0 {
		return 0, moerr.NewInvalidArgNoCtx("power exponent", n)
	}
	result := 1.0
	for i := 1; i <= n; i++ {
		result = result * x
	}
	return result, nil
}

func PowerFloat64(xs []float64, n int, rs []float64) ([]float64, error) {
	return powerFloat64(xs, n, rs)
}

func powerFloat64Pure(xs []float64, n int, rs []float64) ([]float64, error) {
	if n < 0 {
		return nil, moerr.NewInvalidArgNoCtx("power exponent", n)
	}
	for i, x := range xs {
		r, err := Power(x, n)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}
