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

var _ = Describe("Item Lifecycle", func() {
	Context("When walking an item through create, read and delete", func() {
		Describe("Given a freshly created item", func() {
			It("should honour the extracted identifier end to end", func() {
				itemID, err := client.CreateItemID(ctx, api.NewItemPayload().Build())
				Expect(err).NotTo(HaveOccurred())

				GinkgoWriter.Printf("Walking lifecycle of item: %s\n", itemID)

				// A just-created identifier must never be rejected as
				// malformed, whatever else the service does with it.
				status, _, err := client.Do(ctx, http.MethodGet, client.Endpoints().GetItem(itemID), nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(status).NotTo(Equal(http.StatusBadRequest))

				if status == http.StatusOK {
					items, getErr := client.GetItem(ctx, itemID)
					Expect(getErr).NotTo(HaveOccurred())

					for _, item := range items {
						Expect(item.ID).NotTo(BeEmpty())
					}
				}

				Expect(client.DeleteItem(ctx, itemID)).To(Succeed())

				// Once deleted, reads report the item gone, through either
				// of the service's two not-found codes.
				status, _, err = client.Do(ctx, http.MethodGet, client.Endpoints().GetItem(itemID), nil)
				Expect(err).NotTo(HaveOccurred())
				Expect(status).To(SatisfyAny(
					Equal(http.StatusNotFound),
					Equal(http.StatusBadRequest),
				))
			})
		})
	})
})
