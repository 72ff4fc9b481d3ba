package exchangesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// exchangePath builds /v1/exchanges/{id} followed by the escaped segments.
func exchangePath(exchangeID string, segments ...string) string {
	p := "/v1/exchanges/" + url.PathEscape(exchangeID)
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

// doRequest performs an HTTP request with the Client's HTTP client.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	headers map[string]string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// doJSON sends payload (if not nil) as a JSON body and decodes the response
// into target when the status matches expectedStatus.
func (c *Client) doJSON(
	ctx context.Context,
	method, path string,
	payload any,
	target any,
	expectedStatus int,
) error {
	var (
		body    io.Reader
		headers map[string]string
	)
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
		headers = map[string]string{"Content-Type": "application/json"}
	}

	resp, err := c.doRequest(ctx, method, path, body, headers)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, expectedStatus)
}

// checkRequest runs client-side validation when enabled.
func (c *Client) checkRequest(errs map[string]string) error {
	if !c.ValidateRequests || len(errs) == 0 {
		return nil
	}
	return &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "request validation failed",
		Fields:      errs,
	}
}

// decodeJSON decodes a JSON response into the target interface.
// Returns an *APIError if the response status differs from expectedStatus.
func decodeJSON(resp *http.Response, target any, expectedStatus int) error {
	defer resp.Body.Close()

	// Read body once for both error parsing and success decoding
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		if err := parseErrorResponse(resp, bodyBytes); err != nil {
			return err
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if target == nil {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
