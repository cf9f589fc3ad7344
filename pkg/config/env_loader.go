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
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/prtgcli/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")

	errRequired        = errors.New("required environment variable is not set")
	errUnsupportedKind = errors.New("unsupported field kind")
)

// Lookup reads one variable; it has the shape of os.LookupEnv.
type Lookup func(key string) (string, bool)

// EnvConfigLoader fills a struct from environment variables. Fields opt in
// with an `env:"NAME"` tag and may carry `default:"..."`, `required:"true"`
// and `sensitive:"true"`. Nested structs are walked; their fields use their
// own tags.
type EnvConfigLoader struct {
	logger logger.Logger
	lookup Lookup
}

// NewEnvConfigLoader creates a loader reading the process environment.
func NewEnvConfigLoader(log logger.Logger) *EnvConfigLoader {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &EnvConfigLoader{
		logger: log,
		lookup: os.LookupEnv,
	}
}

// WithLookup returns a copy of the loader reading variables through fn.
func (e *EnvConfigLoader) WithLookup(fn Lookup) *EnvConfigLoader {
	c := *e
	c.lookup = fn

	return &c
}

// Load populates dst. The first missing required variable or unparsable
// value is returned as *ConfigurationError.
func (e *EnvConfigLoader) Load(_ context.Context, dst interface{}) error {
	e.logger.Debug().Msg("Loading configuration from environment variables")

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	return e.loadStruct(v)
}

func (e *EnvConfigLoader) loadStruct(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct && fieldType.Tag.Get("env") == "" {
			if err := e.loadStruct(field); err != nil {
				return err
			}

			continue
		}

		if err := e.setFieldValue(field, &fieldType); err != nil {
			return err
		}
	}

	return nil
}

func (e *EnvConfigLoader) setFieldValue(field reflect.Value, fieldType *reflect.StructField) error {
	envName := fieldType.Tag.Get("env")
	if envName == "" || envName == "-" {
		return nil
	}

	envValue, ok := e.lookup(envName)
	envValue = strings.TrimSpace(envValue)

	if !ok || envValue == "" {
		if fieldType.Tag.Get("required") == "true" {
			return &ConfigurationError{Variable: envName, Err: errRequired}
		}

		def, hasDefault := fieldType.Tag.Lookup("default")
		if !hasDefault {
			return nil
		}

		envValue = def
	}

	if err := setFieldByKind(field, envValue); err != nil {
		return &ConfigurationError{Variable: envName, Err: err}
	}

	shown := envValue
	if fieldType.Tag.Get("sensitive") == "true" {
		shown = "[redacted]"
	}

	e.logger.Debug().
		Str("env", envName).
		Str("value", shown).
		Msg("Loaded value from environment variable")

	return nil
}

func setFieldByKind(field reflect.Value, envValue string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(envValue)

	case reflect.Bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %w", err)
		}

		field.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntField(field, envValue)

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			return fmt.Errorf("invalid float value: %w", err)
		}

		field.SetFloat(f)

	default:
		return fmt.Errorf("%w: %s", errUnsupportedKind, field.Kind())
	}

	return nil
}

// setIntField handles time.Duration as a duration string.
func setIntField(field reflect.Value, envValue string) error {
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(envValue)
		if err != nil {
			return fmt.Errorf("invalid duration value: %w", err)
		}

		field.SetInt(int64(d))

		return nil
	}

	i, err := strconv.ParseInt(envValue, 10, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("invalid integer value: %w", err)
	}

	field.SetInt(i)

	return nil
}
