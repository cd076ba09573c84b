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
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/sensorpoll/pkg/logger"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")

	errUnsupportedFieldKind = errors.New("unsupported field kind")
	errMalformedPair        = errors.New("expected key=value")
)

// EnvConfigLoader fills a config struct from environment variables named
// after its json tags. Nested structs join with an underscore, so with the
// SENSORPOLL_ prefix the remote host is read from SENSORPOLL_REMOTE_HOST.
//
// Supported leaf kinds are strings, bools, integers (including Duration
// types written as "5s"), string slices as comma lists and string maps as
// comma separated key=value pairs. Anything else is reported and skipped.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
}

// NewEnvConfigLoader creates an environment loader. A nil logger discards output.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
	}
}

// Load implements ConfigLoader. A <prefix>CONFIG_JSON variable, when set,
// replaces per-field lookup entirely.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	if blob := os.Getenv(e.prefix + "CONFIG_JSON"); blob != "" {
		if err := json.Unmarshal([]byte(blob), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %sCONFIG_JSON: %w", e.prefix, err)
		}

		e.logger.Info().Msg("Loaded configuration from CONFIG_JSON environment variable")

		return nil
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	n := e.loadStruct(v, e.prefix)

	e.logger.Info().Int("fields", n).Str("prefix", e.prefix).Msg("Loaded configuration from environment")

	return nil
}

// loadStruct walks the tagged fields of v and returns how many were set.
func (e *EnvConfigLoader) loadStruct(v reflect.Value, prefix string) int {
	t := v.Type()
	set := 0

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}

		envName := prefix + strings.ToUpper(strings.ReplaceAll(name, ".", "_"))

		if nested, ok := structTarget(field); ok {
			set += e.loadStruct(nested, envName+"_")
			continue
		}

		raw, ok := os.LookupEnv(envName)
		if !ok || raw == "" {
			continue
		}

		if err := setField(field, raw); err != nil {
			e.logger.Warn().Err(err).Str("env", envName).Msg("Ignoring environment variable")
			continue
		}

		set++
	}

	return set
}

// structTarget returns the struct a field refers to, allocating nil
// pointers to structs so nested values can be filled in.
func structTarget(field reflect.Value) (reflect.Value, bool) {
	switch {
	case field.Kind() == reflect.Struct:
		return field, true
	case field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.Struct:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}

		return field.Elem(), true
	default:
		return reflect.Value{}, false
	}
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid boolean: %w", err)
		}

		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntField(field, raw)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("%w: %s", errUnsupportedFieldKind, field.Type())
		}

		items := splitList(raw)
		slice := reflect.MakeSlice(field.Type(), len(items), len(items))

		for i, item := range items {
			slice.Index(i).SetString(item)
		}

		field.Set(slice)
	case reflect.Map:
		return setStringMap(field, raw)
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}

		return setField(field.Elem(), raw)
	default:
		return fmt.Errorf("%w: %s", errUnsupportedFieldKind, field.Kind())
	}

	return nil
}

// setIntField parses integers, treating any *.Duration type as a Go
// duration string.
func setIntField(field reflect.Value, raw string) error {
	if strings.HasSuffix(field.Type().String(), ".Duration") {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		field.SetInt(int64(d))

		return nil
	}

	i, err := strconv.ParseInt(raw, 10, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("invalid integer: %w", err)
	}

	field.SetInt(i)

	return nil
}

// setStringMap fills map[string]string fields such as OTLP headers from
// "k1=v1,k2=v2".
func setStringMap(field reflect.Value, raw string) error {
	if field.Type().Key().Kind() != reflect.String || field.Type().Elem().Kind() != reflect.String {
		return fmt.Errorf("%w: %s", errUnsupportedFieldKind, field.Type())
	}

	m := reflect.MakeMap(field.Type())

	for _, pair := range splitList(raw) {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: %q", errMalformedPair, pair)
		}

		key := reflect.New(field.Type().Key()).Elem()
		key.SetString(strings.TrimSpace(k))

		val := reflect.New(field.Type().Elem()).Elem()
		val.SetString(strings.TrimSpace(v))

		m.SetMapIndex(key, val)
	}

	field.Set(m)

	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
