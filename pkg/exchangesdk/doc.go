/*
Package exchangesdk provides a client SDK for the gift exchange service.

# Overview

The Client wraps the JSON HTTP API: exchanges, their participants, and the
secret gift assignments drawn between active participants.

	client := exchangesdk.NewClient("http://localhost:8080")

	exchange, err := client.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{
		Title:         "Office 2026",
		Date:          "2026-12-18",
		SpendingLimit: 25,
	})

	_, err = client.AddParticipant(ctx, exchange.ID, exchangesdk.AddParticipantRequest{
		Name:   "Ann",
		Email:  "ann@example.com",
		Status: exchangesdk.StatusActive,
	})

	// Draw a fresh single cycle over all active participants.
	assignments, err := client.GenerateAssignments(ctx, exchange.ID, false)

	// Freeze the draw.
	_, err = client.LockAssignments(ctx, exchange.ID)

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status and the
machine readable error code:

	_, err := client.GenerateAssignments(ctx, id, false)
	if exchangesdk.IsCode(err, exchangesdk.ErrorCodeExchangeLocked) {
		// retry with override, or tell the organizer
	}

# Validation

Request types carry go-playground/validator tags. Validate returns a map of
JSON field names to messages, or nil. The server runs the same checks and
answers 400 validation_error with the same map in "fields".
*/
package exchangesdk
