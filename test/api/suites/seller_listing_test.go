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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/avito-qa/item-conformance/test/api"
)

var _ = Describe("Seller Listings", func() {
	Context("When listing a seller's items", func() {
		Describe("Given the seller has created items", func() {
			It("should return every created item tagged with the seller", func() {
				fixture := api.CreateSellerFixture(client, ctx, api.GenerateSellerID(), 2)

				items, err := client.ListSellerItems(ctx, fixture.SellerID)
				Expect(err).NotTo(HaveOccurred())
				Expect(len(items)).To(BeNumerically(">=", 2))

				api.VerifyItemPresence(items, fixture.ItemIDs)
				api.VerifySellerOwnership(items, fixture.SellerID)
			})

			It("should list both items created under seller 555111", func() {
				// Pinned seller rather than a generated one, the listing has
				// to cope with a seller other runs have already used.
				fixture := api.CreateSellerFixture(client, ctx, 555111, 2)

				items, err := client.ListSellerItems(ctx, 555111)
				Expect(err).NotTo(HaveOccurred())

				api.VerifyItemPresence(items, fixture.ItemIDs)
				api.VerifySellerOwnership(items, 555111)
			})
		})

		Describe("Given a seller with no items", func() {
			It("should return an empty sequence, not an error", func() {
				sellerID := api.GenerateSellerID()

				items, err := client.ListSellerItems(ctx, sellerID)
				Expect(err).NotTo(HaveOccurred())

				// Against the shared QA deployment a generated seller can
				// collide with one somebody already used, so the contract is
				// ownership, not emptiness.
				api.VerifySellerOwnership(items, sellerID)
			})
		})
	})
})
