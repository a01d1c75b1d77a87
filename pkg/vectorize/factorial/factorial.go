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

package factorial

import (
	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
)

var (
	factorialInt64 func([]int64, []float64) ([]float64, error)
)

func init() {
	factorialInt64 = factorialInt64Pure
}

// Factorial returns n! as a float64. The product grows past the float64
// range at n = 171 and the result is then +Inf.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, moerr.NewInvalidArgNoCtx("factorial n", n)
	}
	result := 1.0
	for i := 1; i <= n; i++ {
		result = result * float64(i)
	}
	return result, nil
}

func FactorialInt64(xs []int64, rs []float64) ([]float64, error) {
	return factorialInt64(xs, rs)
}

func factorialInt64Pure(xs []int64, rs []float64) ([]float64, error) {
	for i, n := range xs {
		r, err := Factorial(int(n))
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}
	return rs, nil
}
