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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/spjmurray/go-util/pkg/set"

	"github.com/avito-qa/item-conformance/pkg/validator"
)

// mustValidPayload checks a fixture payload locally before it is sent, so a
// creation failure is attributable to the service rather than a broken
// fixture. Scenarios probing the service's own validation do not go through
// fixtures.
func mustValidPayload(payload map[string]interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}

	var typed ItemPayload

	if err := json.Unmarshal(data, &typed); err != nil {
		panic(fmt.Errorf("fixture payload is not a well-formed item: %w", err))
	}

	if err := validator.GetValidator().Struct(&typed); err != nil {
		panic(fmt.Errorf("fixture payload failed validation: %w", err))
	}
}

// CreateItemWithCleanup creates an item, extracts its identifier from the
// status message and schedules deletion. DeleteItem tolerates 404, so cleanup
// stays safe when the scenario already deleted the item itself.
func CreateItemWithCleanup(client *APIClient, ctx context.Context, payload map[string]interface{}) string {
	mustValidPayload(payload)

	itemID, err := client.CreateItemID(ctx, payload)
	if err != nil {
		panic(err)
	}

	GinkgoWriter.Printf("Created item with ID: %s\n", itemID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up item: %s\n", itemID)

		if deleteErr := client.DeleteItem(ctx, itemID); deleteErr != nil {
			GinkgoWriter.Printf("Warning: Failed to delete item %s: %v\n", itemID, deleteErr)
		}
	})

	return itemID
}

// SellerFixture represents a seller with a known set of created items.
type SellerFixture struct {
	SellerID int
	ItemIDs  []string
}

// CreateSellerFixture creates count items under one seller, each with cleanup
// scheduled. Item names carry a random suffix so entries stay tellable apart
// in listings against the shared QA deployment.
func CreateSellerFixture(client *APIClient, ctx context.Context, sellerID, count int) *SellerFixture {
	fixture := &SellerFixture{
		SellerID: sellerID,
		ItemIDs:  make([]string, 0, count),
	}

	for i := range count {
		payload := NewItemPayload().
			WithSellerID(sellerID).
			WithName(generateRandomName(fmt.Sprintf("seller-%d-item-%d", sellerID, i+1))).
			Build()

		fixture.ItemIDs = append(fixture.ItemIDs, CreateItemWithCleanup(client, ctx, payload))
	}

	return fixture
}

// VerifyItemPresence verifies that every expected identifier appears in the
// listed items.
func VerifyItemPresence(items []Item, expectedItemIDs []string) {
	listedIDs := make([]string, len(items))
	for i, item := range items {
		listedIDs[i] = item.ID
	}

	missing := set.New[string](expectedItemIDs...).Difference(set.New[string](listedIDs...))
	Expect(slices.Collect(missing.All())).To(BeEmpty(), "Expected item IDs to be present in the listing")
}

// VerifySellerOwnership verifies that every listed item belongs to the given
// seller. The response field is sellerId, not sellerID as sent on creation.
func VerifySellerOwnership(items []Item, sellerID int) {
	for _, item := range items {
		Expect(item.SellerID).To(Equal(sellerID), "Expected item %s to belong to seller %d", item.ID, sellerID)
	}
}
