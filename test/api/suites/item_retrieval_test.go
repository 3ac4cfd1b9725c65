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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avito-qa/item-conformance/test/api"
)

var _ = Describe("Item Retrieval", func() {
	Context("When fetching an item by identifier", func() {
		Describe("Given the item was just created", func() {
			It("should return a sequence exposing the item's identifier", func() {
				itemID := api.CreateItemWithCleanup(client, ctx, api.NewItemPayload().Build())

				items, err := client.GetItem(ctx, itemID)
				Expect(err).NotTo(HaveOccurred())

				// Single-item reads still answer with a sequence.
				Expect(items).NotTo(BeEmpty())

				for _, item := range items {
					Expect(item.ID).NotTo(BeEmpty())
				}

				api.VerifyItemPresence(items, []string{itemID})
			})

			It("should return the item's fields as created", func() {
				payload := api.NewItemPayload().
					WithPrice(4242).
					WithStatistics(7, 70, 3).
					Build()

				itemID := api.CreateItemWithCleanup(client, ctx, payload)

				items, err := client.GetItem(ctx, itemID)
				Expect(err).NotTo(HaveOccurred())
				Expect(items).NotTo(BeEmpty())

				Expect(items[0].ID).To(Equal(itemID))
				Expect(items[0].Price).To(Equal(4242))

				//nolint:forcetypeassert // safe: we control payload structure
				Expect(items[0].SellerID).To(Equal(payload["sellerID"].(int)))
			})
		})

		Describe("Given a syntactically invalid identifier", func() {
			It("should reject it with either 400 or 404", func() {
				// The service is inconsistent about not-found conditions,
				// both codes are observed in the wild.
				status, _, err := client.Do(ctx, http.MethodGet, client.Endpoints().GetItem("nonexistent123"), nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(SatisfyAny(
					Equal(http.StatusBadRequest),
					Equal(http.StatusNotFound),
				))
			})
		})
	})
})
