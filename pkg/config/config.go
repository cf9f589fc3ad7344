/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads prtgcli settings from the environment, optionally
// backed by a JSON file named in PRTGCLI_CONFIG.
package config

import (
	"context"
	"errors"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/carverauto/prtgcli/pkg/logger"
)

// Environment variable names.
const (
	EnvEndpoint           = "PRTGENDPOINT"
	EnvUsername           = "PRTGUSERNAME"
	EnvPassword           = "PRTGPASSWORD"
	EnvPageSize           = "PRTG_PAGE_SIZE"
	EnvTimeout            = "PRTG_TIMEOUT"
	EnvRateLimit          = "PRTG_RATE_LIMIT"
	EnvInsecureSkipVerify = "PRTG_INSECURE_SKIP_VERIFY"
	EnvConfigFile         = "PRTGCLI_CONFIG"
)

var (
	errInvalidEndpoint = errors.New("endpoint must be an absolute http(s) URL")
	errNotPositive     = errors.New("value must be positive")
	errNegative        = errors.New("value must not be negative")
)

// Config is the connection configuration shared by both binaries.
type Config struct {
	Endpoint           string        `env:"PRTGENDPOINT" required:"true"`
	Username           string        `env:"PRTGUSERNAME" required:"true"`
	Password           string        `env:"PRTGPASSWORD" required:"true" sensitive:"true"`
	PageSize           int           `env:"PRTG_PAGE_SIZE" default:"500"`
	Timeout            time.Duration `env:"PRTG_TIMEOUT" default:"30s"`
	RateLimit          float64       `env:"PRTG_RATE_LIMIT" default:"0"`
	InsecureSkipVerify bool          `env:"PRTG_INSECURE_SKIP_VERIFY" default:"false"`
}

// Load reads Config and validates it. Non-empty entries in overrides, keyed by
// variable name, take precedence over the environment, which takes precedence
// over the file named by PRTGCLI_CONFIG.
func Load(ctx context.Context, log logger.Logger, overrides map[string]string) (*Config, error) {
	lookup := func(key string) (string, bool) {
		if v := overrides[key]; v != "" {
			return v, true
		}

		return os.LookupEnv(key)
	}

	var fileValues map[string]string

	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		values, err := (&FileConfigLoader{}).Load(ctx, path)
		if err != nil {
			return nil, err
		}

		fileValues = values
	}

	loader := NewEnvConfigLoader(log).WithLookup(func(key string) (string, bool) {
		if v, ok := lookup(key); ok && v != "" {
			return v, true
		}

		v, ok := fileValues[key]

		return v, ok
	})

	var cfg Config

	if err := loader.Load(ctx, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values the loader cannot.
func (c *Config) Validate() error {
	if c.Endpoint == "" || c.Username == "" || c.Password == "" {
		return &ConfigurationError{Variable: firstEmpty(c), Err: errRequired}
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ConfigurationError{Variable: EnvEndpoint, Err: errInvalidEndpoint}
	}

	if c.PageSize <= 0 {
		return &ConfigurationError{Variable: EnvPageSize, Err: errNotPositive}
	}

	if c.Timeout <= 0 {
		return &ConfigurationError{Variable: EnvTimeout, Err: errNotPositive}
	}

	if c.RateLimit < 0 {
		return &ConfigurationError{Variable: EnvRateLimit, Err: errNegative}
	}

	return nil
}

func firstEmpty(c *Config) string {
	switch {
	case c.Endpoint == "":
		return EnvEndpoint
	case c.Username == "":
		return EnvUsername
	default:
		return EnvPassword
	}
}

// MarshalZerologObject logs the configuration without the password.
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("endpoint", c.Endpoint).
		Str("username", c.Username).
		Int("page_size", c.PageSize).
		Dur("timeout", c.Timeout).
		Float64("rate_limit", c.RateLimit).
		Bool("insecure_skip_verify", c.InsecureSkipVerify)
}
