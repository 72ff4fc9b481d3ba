package exchangesdk

import (
	"context"
	"net/http"
)

// AddParticipant enrols a participant. Status defaults to invited.
func (c *Client) AddParticipant(
	ctx context.Context,
	exchangeID string,
	req AddParticipantRequest,
) (*ParticipantResponse, error) {
	if err := c.checkRequest(req.Validate()); err != nil {
		return nil, err
	}

	var out ParticipantResponse
	if err := c.doJSON(ctx, http.MethodPost, exchangePath(exchangeID, "participants"), req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListParticipants returns every participant of an exchange.
func (c *Client) ListParticipants(ctx context.Context, exchangeID string) (*ListParticipantsResponse, error) {
	var out ListParticipantsResponse
	if err := c.doJSON(ctx, http.MethodGet, exchangePath(exchangeID, "participants"), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateParticipant changes a participant's status or preferences.
func (c *Client) UpdateParticipant(
	ctx context.Context,
	exchangeID, participantID string,
	req UpdateParticipantRequest,
) (*ParticipantResponse, error) {
	if err := c.checkRequest(req.Validate()); err != nil {
		return nil, err
	}

	var out ParticipantResponse
	path := exchangePath(exchangeID, "participants", participantID)
	if err := c.doJSON(ctx, http.MethodPatch, path, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetParticipantStatus is UpdateParticipant with only the status set.
func (c *Client) SetParticipantStatus(
	ctx context.Context,
	exchangeID, participantID, status string,
) (*ParticipantResponse, error) {
	return c.UpdateParticipant(ctx, exchangeID, participantID, UpdateParticipantRequest{Status: &status})
}

// RemoveParticipant takes a participant out of an exchange. Removing someone
// who is part of the current assignments clears them; the server refuses with
// ErrorCodeExchangeLocked while those assignments are locked.
func (c *Client) RemoveParticipant(ctx context.Context, exchangeID, participantID string) error {
	path := exchangePath(exchangeID, "participants", participantID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}
