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

// Package fake is an in-process stand-in for the remote item service. It
// reproduces the observed contract closely enough to exercise the client and
// the probe without network access, quirks included:
//
//   - creation is acknowledged with the Russian status message, not with the
//     created item
//   - single-item reads answer with a sequence
//   - malformed identifiers get 400, well-formed unknown ones get 404, which
//     is the mechanism behind the dual statuses the scenarios tolerate
//   - the seller field is sellerID on requests but sellerId on responses
package fake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avito-qa/item-conformance/test/api"
)

// Service holds the fake's state. Safe for concurrent use so a single
// instance can back parallel test processes.
type Service struct {
	mu    sync.Mutex
	items map[string]api.Item
}

func NewService() *Service {
	return &Service{
		items: map[string]api.Item{},
	}
}

// Router returns the HTTP surface of the fake, route for route the same as
// the remote service.
func (s *Service) Router() http.Handler {
	router := chi.NewRouter()

	router.Post("/api/1/item", s.createItem)
	router.Get("/api/1/item/{id}", s.getItem)
	router.Get("/api/1/{sellerId}/item", s.listSellerItems)
	router.Get("/api/1/statistic/{id}", s.getStatistic)
	router.Delete("/api/2/item/{id}", s.deleteItem)

	return router
}

// ItemCount reports how many items the fake currently holds.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errcheck // nothing to do about a failed write to a test client
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"result": map[string]any{"message": message},
		"status": strconv.Itoa(status),
	})
}

// createPayload mirrors the creation request shape. Pointer fields tell a
// missing field apart from a zero one, and a wrong-typed field fails the
// decode, which is exactly the 400 behaviour under test.
type createPayload struct {
	SellerID   *int            `json:"sellerID"`
	Name       *string         `json:"name"`
	Price      *int            `json:"price"`
	Statistics *api.Statistics `json:"statistics"`
}

func (s *Service) createItem(w http.ResponseWriter, r *http.Request) {
	var payload createPayload

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "malformed item payload")
		return
	}

	if payload.SellerID == nil || payload.Name == nil || payload.Price == nil {
		writeError(w, http.StatusBadRequest, "missing required field")
		return
	}

	if *payload.SellerID < api.SellerIDMin || *payload.SellerID > api.SellerIDMax {
		writeError(w, http.StatusBadRequest, "seller identifier out of range")
		return
	}

	item := api.Item{
		ID:        uuid.NewString(),
		SellerID:  *payload.SellerID,
		Name:      *payload.Name,
		Price:     *payload.Price,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if payload.Statistics != nil {
		item.Statistics = *payload.Statistics
	}

	s.mu.Lock()
	s.items[item.ID] = item
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"status": fmt.Sprintf("Сохранили объявление - %s", item.ID),
	})
}

// lookupItem resolves an identifier path parameter to an item, writing the
// appropriate error response when it cannot. The real service rejects
// identifiers that are not UUIDs with 400 and answers 404 only for
// well-formed unknown ones; both suites lean on that split.
func (s *Service) lookupItem(w http.ResponseWriter, r *http.Request) (api.Item, bool) {
	id := chi.URLParam(r, "id")

	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "malformed item identifier")
		return api.Item{}, false
	}

	s.mu.Lock()
	item, ok := s.items[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return api.Item{}, false
	}

	return item, true
}

func (s *Service) getItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupItem(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, []api.Item{item})
}

func (s *Service) listSellerItems(w http.ResponseWriter, r *http.Request) {
	sellerID, err := strconv.Atoi(chi.URLParam(r, "sellerId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "malformed seller identifier")
		return
	}

	// Unknown sellers are indistinguishable from sellers with no items, the
	// listing is just empty.
	items := make([]api.Item, 0)

	s.mu.Lock()
	for _, item := range s.items {
		if item.SellerID == sellerID {
			items = append(items, item)
		}
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, items)
}

func (s *Service) getStatistic(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupItem(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, []api.Statistics{item.Statistics})
}

func (s *Service) deleteItem(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookupItem(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	delete(s.items, item.ID)
	s.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}
