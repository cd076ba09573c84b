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

	"github.com/carverauto/sensorpoll/pkg/logger"
)

var (
	errNoConfigPath    = errors.New("no config path given")
	errConfigIsDir     = errors.New("config path is a directory")
	errEmptyConfigFile = errors.New("config file is empty")
)

// FileConfigLoader reads a JSON config file. Environment references in the
// path such as $HOME are expanded before opening.
type FileConfigLoader struct {
	logger logger.Logger
}

// Load implements ConfigLoader.
func (f *FileConfigLoader) Load(_ context.Context, path string, dst interface{}) error {
	if path == "" {
		return errNoConfigPath
	}

	resolved := os.ExpandEnv(path)

	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("config %q: %w", resolved, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: %q", errConfigIsDir, resolved)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return fmt.Errorf("config %q: %w", resolved, err)
	}

	if len(data) == 0 {
		return fmt.Errorf("%w: %q", errEmptyConfigFile, resolved)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("config %q: invalid JSON at byte %d: %w", resolved, syntaxErr.Offset, err)
		}

		return fmt.Errorf("config %q: %w", resolved, err)
	}

	if f.logger != nil {
		f.logger.Debug().Str("path", resolved).Int("bytes", len(data)).Msg("Read config file")
	}

	return nil
}
