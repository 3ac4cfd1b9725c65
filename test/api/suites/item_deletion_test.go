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

var _ = Describe("Item Deletion", func() {
	Context("When deleting an item", func() {
		Describe("Given the item exists", func() {
			It("should answer 200, tolerating the occasional 404", func() {
				itemID, err := client.CreateItemID(ctx, api.NewItemPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				status, _, err := client.Do(ctx, http.MethodDelete, client.Endpoints().DeleteItem(itemID), nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(SatisfyAny(
					Equal(http.StatusOK),
					Equal(http.StatusNotFound),
				))
			})

			It("should handle repeated delete operations", func() {
				itemID, err := client.CreateItemID(ctx, api.NewItemPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				Expect(client.DeleteItem(ctx, itemID)).To(Succeed())

				// Repeated delete should be idempotent - no error (accepts 404)
				Expect(client.DeleteItem(ctx, itemID)).To(Succeed())
			})
		})

		Describe("Given the item does not exist", func() {
			It("should reject the identifier with either 400 or 404", func() {
				status, _, err := client.Do(ctx, http.MethodDelete, client.Endpoints().DeleteItem("nonexistent123"), nil)

				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(SatisfyAny(
					Equal(http.StatusBadRequest),
					Equal(http.StatusNotFound),
				))
			})
		})
	})
})
