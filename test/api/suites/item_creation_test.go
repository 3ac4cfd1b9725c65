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

var _ = Describe("Item Creation", func() {
	Context("When creating a new item", func() {
		Describe("Given a valid payload", func() {
			It("should acknowledge with a status message carrying an extractable identifier", func() {
				response, err := client.CreateItem(ctx, api.NewItemPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				// The identifier inside the free-text status is the only
				// handle to the created item.
				Expect(string(response.Status)).To(ContainSubstring("Сохранили объявление - "))

				itemID, err := response.Status.ItemID()
				Expect(err).NotTo(HaveOccurred())
				Expect(itemID).To(MatchRegexp(`^[a-f0-9-]+$`))

				DeferCleanup(func() {
					if deleteErr := client.DeleteItem(ctx, itemID); deleteErr != nil {
						GinkgoWriter.Printf("Warning: Failed to delete item %s: %v\n", itemID, deleteErr)
					}
				})
			})

			It("should accept the documented example payload", func() {
				payload := api.NewItemPayload().
					WithSellerID(482913).
					WithName("Test Item").
					WithPrice(1000).
					WithStatistics(10, 100, 5).
					Build()

				itemID := api.CreateItemWithCleanup(client, ctx, payload)
				Expect(itemID).To(MatchRegexp(`^[a-f0-9-]+$`))
			})
		})

		Describe("Given an invalid payload", func() {
			It("should reject a non-integer seller identifier", func() {
				_, err := client.CreateItem(ctx, api.NewItemPayload().WithRawSellerID("not-a-number").Build())

				Expect(err).To(HaveOccurred())
				Expect(api.StatusOf(err)).To(Equal(http.StatusBadRequest))
			})

			It("should reject a payload missing its name", func() {
				status, _, err := client.Do(ctx, http.MethodPost, client.Endpoints().CreateItem(),
					api.NewItemPayload().WithoutName().Build())

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(Equal(http.StatusBadRequest))
			})
		})
	})
})
