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

// Statistics carries the engagement counters attached to an item. The same
// shape is used on create requests and on read responses.
type Statistics struct {
	Likes     int `json:"likes" validate:"gte=0"`
	ViewCount int `json:"viewCount" validate:"gte=0"`
	Contacts  int `json:"contacts" validate:"gte=0"`
}

// ItemPayload is the request body for item creation. Note the field is
// "sellerID" here but "sellerId" in responses; the service is inconsistent
// about the casing and both sides must be preserved exactly.
type ItemPayload struct {
	SellerID   int        `json:"sellerID" validate:"required,gte=111111,lte=999999"`
	Name       string     `json:"name" validate:"required"`
	Price      int        `json:"price" validate:"required,gt=0"`
	Statistics Statistics `json:"statistics"`
}

// Item is an item as returned by the read endpoints.
type Item struct {
	ID         string     `json:"id"`
	SellerID   int        `json:"sellerId"`
	Name       string     `json:"name"`
	Price      int        `json:"price"`
	Statistics Statistics `json:"statistics"`
	CreatedAt  string     `json:"createdAt,omitempty"`
}

// CreateItemResponse is the body returned by item creation. The service does
// not return the created item; it returns a human-readable status string with
// the new identifier embedded in it, see StatusMessage.
type CreateItemResponse struct {
	Status StatusMessage `json:"status"`
}
