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

// Package schedule drives a runner on a fixed interval, with an immediate
// first run so a freshly started probe reports without waiting a full period.
package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Runner is the unit of work the scheduler repeats.
type Runner interface {
	Run(ctx context.Context) error
}

type Scheduler struct {
	cron   *cron.Cron
	runner Runner
	logger *zap.Logger
	spec   string
}

func NewScheduler(logger *zap.Logger, runner Runner, every time.Duration) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		runner: runner,
		logger: logger,
		spec:   fmt.Sprintf("@every %s", every),
	}
}

// Start kicks off an immediate run and schedules the repeats. Failures are
// logged, not returned: one bad cycle must not stop the next.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("Starting initial cycle")

	go s.run(ctx)

	_, err := s.cron.AddFunc(s.spec, func() {
		s.logger.Info("Starting scheduled cycle")
		s.run(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling cycle: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("schedule", s.spec))

	return nil
}

func (s *Scheduler) run(ctx context.Context) {
	if err := s.runner.Run(ctx); err != nil {
		s.logger.Error("Cycle failed", zap.Error(err))
	}
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("Scheduler stopped")
}
