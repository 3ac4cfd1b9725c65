/*
Copyright 2025-2026 the Item Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// The conformance probe exercises the item service's full lifecycle on a
// schedule. With --every 0 it runs a single cycle and the exit code reports
// the outcome, which is the shape CI wants.
package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/avito-qa/item-conformance/internal/probe"
	"github.com/avito-qa/item-conformance/internal/schedule"
	"github.com/avito-qa/item-conformance/test/api"
)

func main() {
	pflag.String("base-url", api.DefaultBaseURL, "base URL of the item service")
	pflag.Duration("every", 10*time.Minute, "interval between probe cycles, 0 runs a single cycle and exits")
	pflag.Duration("request-timeout", 30*time.Second, "per-request timeout")
	pflag.Bool("validate-responses", true, "validate response bodies against the service schema")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}

	// Flags can also come from the environment, e.g. PROBE_BASE_URL.
	viper.SetEnvPrefix("PROBE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	ctx := context.Background()

	config := &api.TestConfig{
		BaseURL:           viper.GetString("base-url"),
		RequestTimeout:    viper.GetDuration("request-timeout"),
		ValidateResponses: viper.GetBool("validate-responses"),
	}

	client := api.NewAPIClientWithConfig(config)

	p := probe.New(zapLogger, client)

	every := viper.GetDuration("every")
	if every <= 0 {
		result, err := p.RunCycle(ctx)
		if err != nil {
			zapLogger.Fatal("Probe cycle failed", zap.Error(err))
		}

		zapLogger.Info("Probe cycle succeeded",
			zap.String("itemID", result.ItemID),
			zap.Int("checks", result.Checks),
			zap.Duration("duration", result.Duration))

		return
	}

	scheduler := schedule.NewScheduler(zapLogger, p, every)
	if err := scheduler.Start(ctx); err != nil {
		zapLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	select {}
}
