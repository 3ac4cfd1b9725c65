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

// Package probe runs a lightweight liveness cycle against the item service:
// create an item, read it back, list it under its seller, fetch statistics,
// then delete it. A failing cycle means the full conformance suites would
// fail too, so the probe is the cheap early warning between runs.
package probe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/avito-qa/item-conformance/pkg/validator"
	"github.com/avito-qa/item-conformance/test/api"
)

// ErrItemVanished is returned when a just-created item cannot be read back.
var ErrItemVanished = errors.New("created item vanished")

// ErrOwnershipMismatch is returned when an item is attributed to the wrong
// seller.
var ErrOwnershipMismatch = errors.New("item attributed to wrong seller")

type Probe struct {
	logger *zap.Logger
	client *api.APIClient
}

func New(logger *zap.Logger, client *api.APIClient) *Probe {
	return &Probe{
		logger: logger,
		client: client,
	}
}

// Result summarises one probe cycle.
type Result struct {
	ItemID   string
	Checks   int
	Duration time.Duration
}

// Run satisfies the scheduler's Runner contract.
func (p *Probe) Run(ctx context.Context) error {
	_, err := p.RunCycle(ctx)
	return err
}

// RunCycle walks one item through its whole lifecycle. The first failing
// check aborts the cycle, but the created item is deleted regardless so probe
// runs do not litter the service.
func (p *Probe) RunCycle(ctx context.Context) (*Result, error) {
	start := time.Now()

	sellerID := api.GenerateSellerID()
	builder := api.NewItemPayload().WithSellerID(sellerID)

	// Validate locally first so a creation failure is known to be the
	// service's doing, not a broken payload.
	typed, err := builder.BuildTyped()
	if err != nil {
		return nil, fmt.Errorf("building payload: %w", err)
	}

	if err := validator.GetValidator().Struct(typed); err != nil {
		return nil, fmt.Errorf("payload failed local validation: %w", err)
	}

	p.logger.Info("Creating probe item", zap.Int("sellerID", sellerID))

	itemID, err := p.client.CreateItemID(ctx, builder.Build())
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	defer func() {
		if deleteErr := p.client.DeleteItem(ctx, itemID); deleteErr != nil {
			p.logger.Error("Failed to delete probe item", zap.String("itemID", itemID), zap.Error(deleteErr))
		}
	}()

	checks := 1

	items, err := p.client.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("reading item back: %w", err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s not in read response", ErrItemVanished, itemID)
	}

	if items[0].SellerID != sellerID {
		return nil, fmt.Errorf("%w: item %s reports seller %d, created under %d", ErrOwnershipMismatch, itemID, items[0].SellerID, sellerID)
	}

	checks++

	listing, err := p.client.ListSellerItems(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("listing seller items: %w", err)
	}

	if !slices.ContainsFunc(listing, func(item api.Item) bool { return item.ID == itemID }) {
		return nil, fmt.Errorf("%w: %s not in seller %d listing", ErrItemVanished, itemID, sellerID)
	}

	checks++

	if _, err := p.client.GetStatistics(ctx, itemID); err != nil {
		return nil, fmt.Errorf("reading statistics: %w", err)
	}

	checks++

	result := &Result{
		ItemID:   itemID,
		Checks:   checks,
		Duration: time.Since(start),
	}

	p.logger.Info("Probe cycle complete",
		zap.String("itemID", itemID),
		zap.Int("checks", result.Checks),
		zap.Duration("duration", result.Duration))

	return result, nil
}
