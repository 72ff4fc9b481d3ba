package exchangesdk

import (
	"context"
	"net/http"
)

// GenerateAssignments replaces the exchange's assignments with a fresh single
// cycle over its active participants. A locked exchange answers
// exchange_locked unless overrideLock is set.
func (c *Client) GenerateAssignments(
	ctx context.Context,
	exchangeID string,
	overrideLock bool,
) (*AssignmentsResponse, error) {
	path := exchangePath(exchangeID, "assignments")
	if overrideLock {
		path += "?override_lock=true"
	}

	var out AssignmentsResponse
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAssignments returns the current assignments in chain order.
func (c *Client) GetAssignments(ctx context.Context, exchangeID string) (*AssignmentsResponse, error) {
	var out AssignmentsResponse
	if err := c.doJSON(ctx, http.MethodGet, exchangePath(exchangeID, "assignments"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetRecipient returns the participant that giverID buys for.
func (c *Client) GetRecipient(ctx context.Context, exchangeID, giverID string) (*RecipientResponse, error) {
	var out RecipientResponse
	path := exchangePath(exchangeID, "participants", giverID, "recipient")
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
