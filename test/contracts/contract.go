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

// Package contracts holds the shared plumbing for consumer contract tests.
package contracts

import (
	"github.com/pact-foundation/pact-go/v2/consumer"
)

// PactConfig carries the identity of a consumer contract.
type PactConfig struct {
	Consumer string
	Provider string
	PactDir  string
}

// NewV4Pact builds a V4 HTTP mock provider writing pact files to PactDir.
func NewV4Pact(config PactConfig) (*consumer.V4HTTPMockProvider, error) {
	return consumer.NewV4Pact(consumer.MockHTTPProviderConfig{
		Consumer: config.Consumer,
		Provider: config.Provider,
		PactDir:  config.PactDir,
	})
}
