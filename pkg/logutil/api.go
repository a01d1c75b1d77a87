// Copyright 2021 Matrix Origin
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

package logutil

import (
	"context"

	"go.uber.org/zap"
)

type fieldsKey struct{}

// ContextWithFields returns a child of ctx whose log calls carry fields in
// addition to any inherited from ctx.
func ContextWithFields(ctx context.Context, fields ...zap.Field) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	inherited := contextFields(ctx)
	merged := make([]zap.Field, 0, len(inherited)+len(fields))
	merged = append(merged, inherited...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, fieldsKey{}, merged)
}

func contextFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).([]zap.Field)
	return fields
}

func loggerFor(ctx context.Context) *zap.Logger {
	return GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).With(contextFields(ctx)...)
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	loggerFor(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	loggerFor(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	loggerFor(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	loggerFor(ctx).Error(msg, fields...)
}
