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

package api

import (
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
//
// The item service splits its surface across two path versions: creation,
// retrieval, seller listings and statistics live under /api/1, deletion
// under /api/2. Seller listings nest the seller id *before* the resource
// name.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Item endpoints (v1 API).
func (e *Endpoints) CreateItem() string {
	return "/api/1/item"
}

func (e *Endpoints) GetItem(itemID string) string {
	return fmt.Sprintf("/api/1/item/%s", url.PathEscape(itemID))
}

func (e *Endpoints) ListSellerItems(sellerID int) string {
	return fmt.Sprintf("/api/1/%d/item", sellerID)
}

func (e *Endpoints) GetStatistics(itemID string) string {
	return fmt.Sprintf("/api/1/statistic/%s", url.PathEscape(itemID))
}

// Item deletion endpoint (v2 API).
func (e *Endpoints) DeleteItem(itemID string) string {
	return fmt.Sprintf("/api/2/item/%s", url.PathEscape(itemID))
}
