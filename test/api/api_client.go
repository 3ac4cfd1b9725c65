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

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"
)

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
	validator *ResponseValidator
}

func NewAPIClient(baseURL string) *APIClient {
	config := LoadTestConfig()
	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL)
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}

	if config.ValidateResponses {
		validator, err := NewResponseValidator()
		if err != nil {
			// The schema is embedded in the binary, failing to load it is a
			// programming error, not a runtime condition.
			panic(fmt.Errorf("loading response validator: %w", err))
		}

		c.validator = validator
	}

	return c
}

// StatusError reports an HTTP status code the client did not expect, along
// with the response body and the trace ID to search service logs with.
type StatusError struct {
	StatusCode int
	Body       string
	TraceID    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d, body: %s (trace ID: %s)", e.StatusCode, e.Body, e.TraceID)
}

// StatusOf returns the HTTP status code carried by err, or zero when err does
// not wrap a StatusError. Lets scenarios distinguish "service said 404" from
// transport failures.
func StatusOf(err error) int {
	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}

	return 0
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	// The service is spoken to with JSON content negotiation on every request,
	// bodied or not.
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			TraceID:    extractTraceID(traceParent),
		}

		return resp, respBody, fmt.Errorf("expected status %d: %w", expectedStatus, statusErr)
	}

	if c.validator != nil && resp.StatusCode == http.StatusOK {
		if err := c.validator.ValidateResponse(req, resp, respBody); err != nil {
			c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "response schema validation")
			return resp, respBody, fmt.Errorf("response schema validation: %w", err)
		}
	}

	return resp, respBody, nil
}

// listResource is a generic helper for the sequence shaped endpoints: the
// service answers item reads, seller listings and statistics reads with JSON
// arrays, even when a single identifier was queried.
func listResource[T any](ctx context.Context, c *APIClient, path, resourceType string) ([]T, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", resourceType, err)
	}

	var resources []T
	if err := json.Unmarshal(respBody, &resources); err != nil {
		return nil, fmt.Errorf("unmarshaling %s response: %w", resourceType, err)
	}

	return resources, nil
}

// CreateItem creates a new item. The service does not return the item, only a
// status message with the new identifier embedded in it.
func (c *APIClient) CreateItem(ctx context.Context, body map[string]interface{}) (*CreateItemResponse, error) {
	path := c.endpoints.CreateItem()

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling item body: %w", err)
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, path, strings.NewReader(string(bodyBytes)), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	response := &CreateItemResponse{}
	if err := json.Unmarshal(respBody, response); err != nil {
		return nil, fmt.Errorf("unmarshaling create response: %w", err)
	}

	return response, nil
}

// CreateItemID creates an item and returns the identifier extracted from the
// status message. Convenience for scenarios that only need the handle.
func (c *APIClient) CreateItemID(ctx context.Context, body map[string]interface{}) (string, error) {
	response, err := c.CreateItem(ctx, body)
	if err != nil {
		return "", err
	}

	return response.Status.ItemID()
}

// GetItem retrieves an item by identifier.
func (c *APIClient) GetItem(ctx context.Context, itemID string) ([]Item, error) {
	return listResource[Item](ctx, c, c.endpoints.GetItem(itemID), "item")
}

// ListSellerItems lists all items belonging to a seller. Unknown sellers get
// an empty sequence, not an error.
func (c *APIClient) ListSellerItems(ctx context.Context, sellerID int) ([]Item, error) {
	return listResource[Item](ctx, c, c.endpoints.ListSellerItems(sellerID), "seller items")
}

// GetStatistics retrieves the statistics sequence for an item.
func (c *APIClient) GetStatistics(ctx context.Context, itemID string) ([]Statistics, error) {
	return listResource[Statistics](ctx, c, c.endpoints.GetStatistics(itemID), "statistics")
}

// DeleteItem deletes an item. The service answers 200 for a live item and 404
// for one already gone; both count as success so cleanup can run
// unconditionally after a test.
func (c *APIClient) DeleteItem(ctx context.Context, itemID string) error {
	path := c.endpoints.DeleteItem(itemID)

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, http.MethodDelete, path, nil, 0)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
		return nil
	default:
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
			TraceID:    extractTraceID(resp.Request.Header.Get("Traceparent")),
		}

		return fmt.Errorf("deleting item '%s': %w", itemID, statusErr)
	}
}

// Do issues a request and returns the raw status code and body with no status
// expectation. Scenarios that accept more than one status code assert on the
// result themselves. A []byte body is sent verbatim, anything else non-nil is
// marshaled to JSON.
func (c *APIClient) Do(ctx context.Context, method, path string, body interface{}) (int, []byte, error) {
	var reader io.Reader

	switch body := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(body)
	default:
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(bodyBytes)
	}

	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, method, path, reader, 0)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, respBody, nil
}

// Endpoints exposes the endpoint catalogue so scenarios using Do can build
// paths without duplicating them.
func (c *APIClient) Endpoints() *Endpoints {
	return c.endpoints
}
