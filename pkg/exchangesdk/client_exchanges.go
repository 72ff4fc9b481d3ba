package exchangesdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateExchange registers a new exchange. Titles are unique.
func (c *Client) CreateExchange(ctx context.Context, req CreateExchangeRequest) (*ExchangeResponse, error) {
	if err := c.checkRequest(req.Validate()); err != nil {
		return nil, err
	}

	var out ExchangeResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/exchanges", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListExchanges returns every exchange in creation order.
func (c *Client) ListExchanges(ctx context.Context) (*ListExchangesResponse, error) {
	var out ListExchangesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/exchanges", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindExchangeByTitle looks an exchange up by its exact title. found is false
// when no exchange has that title.
func (c *Client) FindExchangeByTitle(ctx context.Context, title string) (exchange *ExchangeResponse, found bool, err error) {
	var out ListExchangesResponse
	path := "/v1/exchanges?" + url.Values{"title": {title}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, false, err
	}
	if len(out.Exchanges) == 0 {
		return nil, false, nil
	}
	return &out.Exchanges[0], true, nil
}

// GetExchange fetches one exchange.
func (c *Client) GetExchange(ctx context.Context, exchangeID string) (*ExchangeResponse, error) {
	var out ExchangeResponse
	if err := c.doJSON(ctx, http.MethodGet, exchangePath(exchangeID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExchange changes the date, location, description or spending limit.
func (c *Client) UpdateExchange(
	ctx context.Context,
	exchangeID string,
	req UpdateExchangeRequest,
) (*ExchangeResponse, error) {
	if err := c.checkRequest(req.Validate()); err != nil {
		return nil, err
	}

	var out ExchangeResponse
	if err := c.doJSON(ctx, http.MethodPatch, exchangePath(exchangeID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// LockAssignments freezes the current assignments against regeneration.
func (c *Client) LockAssignments(ctx context.Context, exchangeID string) (*ExchangeResponse, error) {
	var out ExchangeResponse
	if err := c.doJSON(ctx, http.MethodPost, exchangePath(exchangeID, "lock"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnlockAssignments allows assignments to be regenerated again.
func (c *Client) UnlockAssignments(ctx context.Context, exchangeID string) (*ExchangeResponse, error) {
	var out ExchangeResponse
	if err := c.doJSON(ctx, http.MethodDelete, exchangePath(exchangeID, "lock"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleLock flips the assignment lock and returns the new state.
func (c *Client) ToggleLock(ctx context.Context, exchangeID string) (*ExchangeResponse, error) {
	var out ExchangeResponse
	if err := c.doJSON(ctx, http.MethodPost, exchangePath(exchangeID, "lock", "toggle"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
