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
	"errors"
	"fmt"
	"regexp"
)

// ErrNoItemID is returned when a creation status message does not contain an
// item identifier.
var ErrNoItemID = errors.New("no item identifier in status message")

// statusItemIDRegex matches the identifier embedded in the creation status.
// The service replies in Russian, "Сохранили объявление - <id>", and the
// identifier is the only machine-readable part of the message.
var statusItemIDRegex = regexp.MustCompile(`Сохранили объявление - ([a-f0-9-]+)`)

// StatusMessage is the free-text status string returned by item creation.
type StatusMessage string

// ItemID extracts the created item's identifier from the message.
func (m StatusMessage) ItemID() (string, error) {
	return ExtractItemID(string(m))
}

// ExtractItemID pulls the item identifier out of a creation status message.
// The service does not return the created item, only a human-readable status
// with the identifier embedded, so this is the sole way to learn the ID of an
// item you just created.
func ExtractItemID(status string) (string, error) {
	matches := statusItemIDRegex.FindStringSubmatch(status)
	if len(matches) < 2 {
		return "", fmt.Errorf("%w: %q", ErrNoItemID, status)
	}

	return matches[1], nil
}
