package http

import (
	"errors"
	"net/http"

	"github.com/astromitts/gifterator3000/internal/exchange/assign"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/astromitts/gifterator3000/pkg/httpx"
	"github.com/astromitts/gifterator3000/pkg/slogx"
)

type errorMapping struct {
	status      int
	code        string
	description string
}

// errorMappings is checked in order with errors.Is.
var errorMappings = []struct {
	err error
	errorMapping
}{
	{assign.ErrExchangeLocked, errorMapping{http.StatusConflict, exchangesdk.ErrorCodeExchangeLocked,
		"Assignments are locked for this exchange. Unlock it or pass override_lock=true."}},
	{assign.ErrInsufficientParticipants, errorMapping{http.StatusUnprocessableEntity, exchangesdk.ErrorCodeInsufficientParticipants,
		"At least two active participants are required to generate assignments."}},
	{assign.ErrAssignmentGeneration, errorMapping{http.StatusInternalServerError, exchangesdk.ErrorCodeAssignmentGenerationFailed,
		"Could not generate a closed assignment cycle. Please try again."}},
	{assign.ErrBrokenCycle, errorMapping{http.StatusInternalServerError, exchangesdk.ErrorCodeBrokenCycle,
		"Stored assignments do not form a single cycle. Regenerate them."}},
	{service.ErrExchangeNotFound, errorMapping{http.StatusNotFound, exchangesdk.ErrorCodeExchangeNotFound,
		"Exchange not found."}},
	{service.ErrParticipantNotFound, errorMapping{http.StatusNotFound, exchangesdk.ErrorCodeParticipantNotFound,
		"Participant not found."}},
	{service.ErrAssignmentNotFound, errorMapping{http.StatusNotFound, exchangesdk.ErrorCodeAssignmentNotFound,
		"This participant has no assignment yet."}},
	{service.ErrParticipantAssigned, errorMapping{http.StatusConflict, exchangesdk.ErrorCodeExchangeLocked,
		"This participant is part of locked assignments. Unlock the exchange before removing them."}},
	{service.ErrTitleTaken, errorMapping{http.StatusConflict, exchangesdk.ErrorCodeTitleTaken,
		"An exchange with this title already exists."}},
	{service.ErrEmailTaken, errorMapping{http.StatusConflict, exchangesdk.ErrorCodeEmailTaken,
		"This email is already enrolled in the exchange."}},
	{service.ErrInvalidStatus, errorMapping{http.StatusBadRequest, exchangesdk.ErrorCodeValidation,
		"Status must be one of invited, declined or active."}},
	{service.ErrInvalidExchange, errorMapping{http.StatusBadRequest, exchangesdk.ErrorCodeValidation,
		"Exchange details are invalid."}},
	{service.ErrInvalidParticipant, errorMapping{http.StatusBadRequest, exchangesdk.ErrorCodeValidation,
		"Participant name and email are required."}},
}

// writeServiceError maps a service error to its HTTP response. Unknown errors
// are logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			httpx.WriteError(w, m.status, m.code, m.description)
			return
		}
	}

	slogx.FromContext(r.Context()).Error("unhandled service error", "error", err)
	httpx.WriteError(w, http.StatusInternalServerError, exchangesdk.ErrorCodeServerError, "Internal server error.")
}

func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteError(w, http.StatusBadRequest, exchangesdk.ErrorCodeInvalidRequest, description)
}

func writeValidationError(w http.ResponseWriter, fields map[string]string) {
	httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
		Error:            exchangesdk.ErrorCodeValidation,
		ErrorDescription: "Request validation failed.",
		Fields:           fields,
	})
}
