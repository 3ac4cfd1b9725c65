package api

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	mathrand "math/rand/v2"
)

// SellerIDMin and SellerIDMax bound the six digit seller identifiers the
// service accepts.
const (
	SellerIDMin = 111111
	SellerIDMax = 999999
)

// randBetween returns a random integer in [min, max] inclusive.
func randBetween(min, max int) int {
	return mathrand.IntN(max-min+1) + min
}

// GenerateSellerID returns a pseudo-random seller identifier in the accepted
// range. There is no uniqueness guarantee across calls; collisions against the
// shared QA deployment are accepted test noise.
func GenerateSellerID() int {
	return randBetween(SellerIDMin, SellerIDMax)
}

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	rand.Read(bytes)
	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// ItemPayloadBuilder builds item creation payloads for testing.
type ItemPayloadBuilder struct {
	payload map[string]interface{}
}

// NewItemPayload creates a new item payload builder with randomized defaults:
// a fresh seller identifier, a numbered name, a price in [100, 10000] and
// plausible statistics counters. Use the With* methods to pin or break
// individual fields.
func NewItemPayload() *ItemPayloadBuilder {
	return &ItemPayloadBuilder{
		payload: map[string]interface{}{
			"sellerID": GenerateSellerID(),
			"name":     fmt.Sprintf("Test Item %d", randBetween(1000, 9999)),
			"price":    randBetween(100, 10000),
			"statistics": map[string]interface{}{
				"likes":     randBetween(0, 100),
				"viewCount": randBetween(0, 1000),
				"contacts":  randBetween(0, 50),
			},
		},
	}
}

// WithSellerID pins the seller identifier.
func (b *ItemPayloadBuilder) WithSellerID(sellerID int) *ItemPayloadBuilder {
	b.payload["sellerID"] = sellerID
	return b
}

// WithRawSellerID sets the sellerID field to an arbitrary value, including
// values of the wrong type. Used to provoke validation errors.
func (b *ItemPayloadBuilder) WithRawSellerID(value interface{}) *ItemPayloadBuilder {
	b.payload["sellerID"] = value
	return b
}

// WithName sets the item name.
func (b *ItemPayloadBuilder) WithName(name string) *ItemPayloadBuilder {
	b.payload["name"] = name
	return b
}

// WithoutName removes the name field entirely so the payload is missing a
// required field.
func (b *ItemPayloadBuilder) WithoutName() *ItemPayloadBuilder {
	delete(b.payload, "name")
	return b
}

// WithPrice sets the item price.
func (b *ItemPayloadBuilder) WithPrice(price int) *ItemPayloadBuilder {
	b.payload["price"] = price
	return b
}

// WithStatistics sets all three statistics counters.
func (b *ItemPayloadBuilder) WithStatistics(likes, viewCount, contacts int) *ItemPayloadBuilder {
	b.payload["statistics"] = map[string]interface{}{
		"likes":     likes,
		"viewCount": viewCount,
		"contacts":  contacts,
	}

	return b
}

// Build returns the completed item payload.
func (b *ItemPayloadBuilder) Build() map[string]interface{} {
	return b.payload
}

// BuildTyped returns the payload as a typed struct. Only meaningful for
// well-formed payloads; raw overrides that do not fit the typed shape make
// the conversion fail.
func (b *ItemPayloadBuilder) BuildTyped() (*ItemPayload, error) {
	data, err := json.Marshal(b.payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item payload: %w", err)
	}

	payload := &ItemPayload{}
	if err := json.Unmarshal(data, payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item payload: %w", err)
	}

	return payload, nil
}
