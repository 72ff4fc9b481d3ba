package exchangesdk

import (
	"net/http"
	"strings"
	"time"
)

// Client is a client for the gift exchange service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// ValidateRequests runs the request Validate methods before sending and
	// returns a validation *APIError without a round trip.
	// Default: true
	ValidateRequests bool
}

// NewClient creates a new gift exchange client with request validation enabled.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		ValidateRequests: true,
	}
}
