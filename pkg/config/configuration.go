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

// Package config decodes the TOML description of a sine sweep.
package config

import (
	"context"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"

	"github.com/matrixorigin/taylorsin/pkg/common/moerr"
	"github.com/matrixorigin/taylorsin/pkg/logutil"
	"github.com/matrixorigin/taylorsin/pkg/testbench"
	"github.com/matrixorigin/taylorsin/pkg/vectorize/taylorsin"
)

// Config is the top level document.
//
//	order = 20
//
//	[log]
//	level = "debug"
//	format = "json"
//
//	[sweep]
//	stop-degrees = 90.0
//	step-degrees = 5.0
type Config struct {
	// Order is the highest power of the sine series. default 20
	Order int                   `toml:"order"`
	Log   logutil.LogConfig     `toml:"log"`
	Sweep testbench.SweepConfig `toml:"sweep"`
}

// Default returns a validated configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(context.Background()); err != nil {
		panic(err)
	}
	return cfg
}

// Parse decodes data, which the caller has already read, into a validated
// Config. Keys that match no field are rejected.
func Parse(ctx context.Context, data string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, moerr.NewBadConfig(ctx, "decode toml: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, moerr.NewBadConfig(ctx, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills defaults and checks every section.
func (c *Config) Validate(ctx context.Context) error {
	if c.Order == 0 {
		c.Order = taylorsin.DefaultOrder
	}
	if c.Order < 0 {
		return moerr.NewBadConfig(ctx, "order must be positive, got %d", c.Order)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return moerr.NewBadConfig(ctx, "log level %q: %v", c.Log.Level, err)
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return moerr.NewBadConfig(ctx, "log format must be console or json, got %q", c.Log.Format)
	}
	return c.Sweep.Validate(ctx)
}

// Kernel returns the Taylor series kernel at the configured order.
func (c *Config) Kernel() testbench.Kernel {
	return testbench.NewTaylorKernel(c.Order)
}

// Run sets up logging and sweeps the configured kernel against math.Sin.
func (c *Config) Run(ctx context.Context) (*testbench.Report, error) {
	logutil.SetupLogger(&c.Log)
	return testbench.Run(ctx, c.Sweep, c.Kernel(), testbench.StdSine)
}
