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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/carverauto/sensorpoll/pkg/config"
	"github.com/carverauto/sensorpoll/pkg/lifecycle"
	"github.com/carverauto/sensorpoll/pkg/logger"
	"github.com/carverauto/sensorpoll/pkg/pipeline"
	"github.com/carverauto/sensorpoll/pkg/version"
)

var (
	errFailedToLoadConfig = fmt.Errorf("failed to load config")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/sensorpoll/sensorpoll.json", "Path to sensorpoll config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get())
		return nil
	}

	ctx := context.Background()

	// Step 1: Load configuration over the defaults
	cfgLoader := config.NewConfig(nil)

	cfg := pipeline.DefaultConfig()

	if err := cfgLoader.LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	// Step 2: Create logger from loaded config
	logConfig := cfg.Logging
	if logConfig == nil {
		logConfig = logger.DefaultConfig()
	}

	mainLogger, err := lifecycle.CreateComponentLogger(ctx, cfg.ServiceName, logConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	mainLogger.Info().Str("version", version.Get().String()).Msg("Starting sensorpoll")

	// Step 3: Metrics export, noop when disabled
	if err := lifecycle.InitializeMetrics(ctx, cfg.ServiceName, &cfg.Metrics.OTel,
		time.Duration(cfg.Metrics.ExportInterval), mainLogger); err != nil {
		return err
	}

	p, err := pipeline.New(ctx, cfg, mainLogger)
	if err != nil {
		return err
	}

	return lifecycle.RunServer(ctx, &lifecycle.ServerOptions{
		ServiceName:     cfg.ServiceName,
		Service:         p,
		ShutdownTimeout: time.Duration(cfg.ShutdownTimeout),
		Logger:          mainLogger,
	})
}
