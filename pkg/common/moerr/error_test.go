// Copyright 2021 - 2022 Matrix Origin
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

package moerr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidArg(t *testing.T) {
	err := NewInvalidArg(context.Background(), "factorial n", -3)
	require.Equal(t, "invalid argument factorial n, bad value -3", err.Error())
	require.Equal(t, ErrInvalidArg, err.ErrorCode())
	require.True(t, IsMoErrCode(err, ErrInvalidArg))
	require.False(t, IsMoErrCode(err, ErrBadConfig))
}

func TestIsMoErrCode(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		err      error
		code     uint16
		expected bool
	}{
		{
			name:     "nil error is Ok",
			err:      nil,
			code:     Ok,
			expected: true,
		},
		{
			name:     "nil error is not internal",
			err:      nil,
			code:     ErrInternal,
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			code:     ErrInternal,
			expected: false,
		},
		{
			name:     "bad config",
			err:      NewBadConfig(ctx, "order %d", -1),
			code:     ErrBadConfig,
			expected: true,
		},
		{
			name:     "wrapped invalid input",
			err:      fmt.Errorf("decode: %w", NewInvalidInput(ctx, "x")),
			code:     ErrInvalidInput,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsMoErrCode(tt.err, tt.code))
		})
	}
}

func TestUnknownCodePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.True(t, IsMoErrCode(r.(*Error), ErrInternal))
	}()
	_ = newError(context.Background(), 12345)
}
