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

package taylorsin

import (
	"math"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
)

func Test_ApproximateSineZero(t *testing.T) {
	convey.Convey("sin(0) is exactly zero for every order", t, func() {
		for order := 0; order <= 40; order++ {
			r, err := ApproximateSine(0, order)
			convey.So(err, convey.ShouldBeNil)
			convey.So(r, convey.ShouldEqual, 0.0)
		}
	})
}

func Test_ApproximateSineLowOrders(t *testing.T) {
	convey.Convey("truncation keeps only terms with power <= order", t, func() {
		x := 0.5
		r, err := ApproximateSine(x, 0)
		convey.So(err, convey.ShouldBeNil)
		convey.So(r, convey.ShouldEqual, 0.0)

		r, _ = ApproximateSine(x, 1)
		convey.So(r, convey.ShouldEqual, x)

		r, _ = ApproximateSine(x, 2)
		convey.So(r, convey.ShouldEqual, x)

		r3, _ := ApproximateSine(x, 3)
		convey.So(r3, convey.ShouldEqual, x-x*x*x/6)

		r4, _ := ApproximateSine(x, 4)
		convey.So(r4, convey.ShouldEqual, r3)
	})
}

func Test_ApproximateSineAccuracy(t *testing.T) {
	convey.Convey("order 20 stays within 0.1% of math.Sin on [0, pi/2]", t, func() {
		for k := 0; float64(k)*0.01 <= math.Pi/2; k++ {
			x := float64(k) * 0.01
			want := math.Sin(x)
			got, err := ApproximateSine(x, DefaultOrder)
			convey.So(err, convey.ShouldBeNil)
			// relative tolerance collapses at the zero crossing
			tol := math.Max(0.001*math.Abs(want), 1e-12)
			convey.So(math.Abs(got-want), convey.ShouldBeLessThanOrEqualTo, tol)
		}
	})
}

func Test_ApproximateSineFiveDegrees(t *testing.T) {
	convey.Convey("5 degrees", t, func() {
		got, err := ApproximateSine(0.0873, DefaultOrder)
		convey.So(err, convey.ShouldBeNil)
		convey.So(got, convey.ShouldAlmostEqual, 0.08716, 0.0001)
		convey.So(math.Abs(got-math.Sin(0.0873)), convey.ShouldBeLessThanOrEqualTo, 0.001*math.Sin(0.0873))

		got = Sin(5 * math.Pi / 180)
		convey.So(got, convey.ShouldAlmostEqual, 0.08716, 0.00001)
	})
}

func Test_ApproximateSineOrderImproves(t *testing.T) {
	orders := []int{3, 7, 11, 15}
	for _, x := range []float64{0.1, 0.5, 1.0, 1.5} {
		prev := math.Inf(1)
		for _, order := range orders {
			got, err := ApproximateSine(x, order)
			require.NoError(t, err)
			e := math.Abs(got - math.Sin(x))
			// one ulp of slack once the truncation error is below rounding
			require.LessOrEqual(t, e, prev+1e-15, "x=%v order=%d", x, order)
			prev = e
		}
	}
}

func Test_ApproximateSineLargeX(t *testing.T) {
	// no range reduction, the series is simply far from converged
	got, err := ApproximateSine(10, DefaultOrder)
	require.NoError(t, err)
	require.False(t, math.IsNaN(got))
	require.Greater(t, math.Abs(got-math.Sin(10)), 1.0)
}

func Test_ApproximateSineNegativeOrder(t *testing.T) {
	_, err := ApproximateSine(1, -1)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
	_, err = AlternatingSine(1, -4)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidArg))
}

func Test_ApproximateSineOdd(t *testing.T) {
	for _, x := range []float64{0.2, 0.9, 1.3} {
		pos, _ := ApproximateSine(x, DefaultOrder)
		neg, _ := ApproximateSine(-x, DefaultOrder)
		require.Equal(t, pos, -neg)
	}
}

// The two-accumulator sum is the reference rounding. The single
// accumulator form agrees only to within a few ulps and must not be
// substituted where bit-exact results are compared.
func Test_AlternatingSineAgrees(t *testing.T) {
	for k := 0; float64(k)*0.05 <= math.Pi/2; k++ {
		x := float64(k) * 0.05
		grouped, err := ApproximateSine(x, DefaultOrder)
		require.NoError(t, err)
		single, err := AlternatingSine(x, DefaultOrder)
		require.NoError(t, err)
		require.InDelta(t, grouped, single, 1e-15)
	}
}

func TestSinFloat64(t *testing.T) {
	//Test values
	nums := []float64{0, 0.25, -0.25, 1, math.Pi / 2}
	//Init a new variable
	tempNums := make([]float64, len(nums))
	//Run sin function
	sinNums := SinFloat64(nums, tempNums)

	for i, n := range nums {
		want, _ := ApproximateSine(n, DefaultOrder)
		require.Equal(t, want, sinNums[i])
	}
}

func TestSinFloat32(t *testing.T) {
	//Test values
	nums := []float32{0, 0.25, -0.25, 1}
	//Init a new variable
	tempNums := make([]float64, len(nums))
	//Run sin function
	sinNums := SinFloat32(nums, tempNums)

	for i, n := range nums {
		require.Equal(t, Sin(float64(n)), sinNums[i])
	}
}

func TestSinFloat64Dispatch(t *testing.T) {
	called := 0
	stubs := gostub.Stub(&sinFloat64, func(xs []float64, rs []float64) []float64 {
		called++
		return rs
	})
	defer stubs.Reset()

	SinFloat64([]float64{1}, make([]float64, 1))
	require.Equal(t, 1, called)
}
