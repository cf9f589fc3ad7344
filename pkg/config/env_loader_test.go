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

package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Level string `env:"TEST_LEVEL" default:"info"`
}

type sample struct {
	Name     string        `env:"TEST_NAME" required:"true"`
	Count    int32         `env:"TEST_COUNT"`
	Wait     time.Duration `env:"TEST_WAIT" default:"1m"`
	Ratio    float32       `env:"TEST_RATIO"`
	Enabled  bool          `env:"TEST_ENABLED"`
	Ignored  string
	Nested   nested
	internal string `env:"TEST_INTERNAL"`
}

func mapLookup(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := values[key]

		return v, ok
	}
}

func TestEnvConfigLoader_Load(t *testing.T) {
	loader := NewEnvConfigLoader(nil).WithLookup(mapLookup(map[string]string{
		"TEST_NAME":     " probe ",
		"TEST_COUNT":    "12",
		"TEST_RATIO":    "0.5",
		"TEST_ENABLED":  "1",
		"TEST_LEVEL":    "debug",
		"TEST_INTERNAL": "x",
	}))

	var dst sample

	require.NoError(t, loader.Load(context.Background(), &dst))

	assert.Equal(t, "probe", dst.Name)
	assert.Equal(t, int32(12), dst.Count)
	assert.Equal(t, time.Minute, dst.Wait)
	assert.InDelta(t, 0.5, dst.Ratio, 0.0001)
	assert.True(t, dst.Enabled)
	assert.Empty(t, dst.Ignored)
	assert.Equal(t, "debug", dst.Nested.Level)
	assert.Empty(t, dst.internal)
}

func TestEnvConfigLoader_IntOverflow(t *testing.T) {
	loader := NewEnvConfigLoader(nil).WithLookup(mapLookup(map[string]string{
		"TEST_NAME":  "probe",
		"TEST_COUNT": "9999999999",
	}))

	var dst sample

	err := loader.Load(context.Background(), &dst)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "TEST_COUNT", cfgErr.Variable)
}

func TestEnvConfigLoader_BadDestination(t *testing.T) {
	loader := NewEnvConfigLoader(nil)

	var nilPtr *sample

	require.ErrorIs(t, loader.Load(context.Background(), sample{}), ErrDstMustBeNonNilPointer)
	require.ErrorIs(t, loader.Load(context.Background(), nilPtr), ErrDstMustBeNonNilPointer)

	n := 3
	require.ErrorIs(t, loader.Load(context.Background(), &n), ErrDstMustBePointerToStruct)
}

func TestEnvConfigLoader_UnsupportedKind(t *testing.T) {
	type withSlice struct {
		Hosts []string `env:"TEST_HOSTS"`
	}

	loader := NewEnvConfigLoader(nil).WithLookup(mapLookup(map[string]string{"TEST_HOSTS": "a,b"}))

	err := loader.Load(context.Background(), &withSlice{})
	require.ErrorIs(t, err, errUnsupportedKind)
}
