package http

import (
	"net/http"
	"strconv"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/astromitts/gifterator3000/pkg/httpx"
)

type AssignmentsHandler struct {
	ExchangeService    *service.ExchangeService
	ParticipantService *service.ParticipantService
	AssignmentService  *service.AssignmentService
}

// HandleGenerate draws a fresh assignment cycle.
//
//	@Summary		Generate assignments
//	@Description	Replaces the exchange's assignments with one random cycle over all active participants: everyone gives once, receives once, and never draws themselves.
//	@Description	A locked exchange is left untouched unless override_lock=true.
//	@Tags			Assignments
//	@Produce		json
//	@Param			id				path		string	true	"Exchange ID"
//	@Param			override_lock	query		bool	false	"Regenerate even when assignments are locked"
//	@Success		201				{object}	exchangesdk.AssignmentsResponse	"Assignments in chain order"
//	@Failure		400				{object}	exchangesdk.ErrorResponse		"Malformed override_lock"
//	@Failure		404				{object}	exchangesdk.ErrorResponse		"Exchange not found"
//	@Failure		409				{object}	exchangesdk.ErrorResponse		"Assignments are locked"
//	@Failure		422				{object}	exchangesdk.ErrorResponse		"Fewer than two active participants"
//	@Failure		429				{object}	exchangesdk.ErrorResponse		"Rate limit exceeded"
//	@Failure		500				{object}	exchangesdk.ErrorResponse		"Generation failed"
//	@Router			/v1/exchanges/{id}/assignments [post]
func (h *AssignmentsHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	override := false
	if raw := r.URL.Query().Get("override_lock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeBadRequest(w, "override_lock must be a boolean")
			return
		}
		override = v
	}

	set, err := h.AssignmentService.GenerateAssignments(ctx, id, override)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeAssignments(w, r, http.StatusCreated, id, set)
}

// HandleList returns the current assignments in chain order.
//
//	@Summary		List assignments
//	@Description	Returns the assignments as a chain: each receiver is the giver of the next entry and the last receiver closes the cycle.
//	@Tags			Assignments
//	@Produce		json
//	@Param			id	path		string	true	"Exchange ID"
//	@Success		200	{object}	exchangesdk.AssignmentsResponse
//	@Failure		404	{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Failure		500	{object}	exchangesdk.ErrorResponse	"Stored assignments are not a single cycle"
//	@Router			/v1/exchanges/{id}/assignments [get]
func (h *AssignmentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	set, err := h.AssignmentService.OrderedAssignments(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeAssignments(w, r, http.StatusOK, id, set)
}

func (h *AssignmentsHandler) writeAssignments(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	exchangeID string,
	set []domain.Assignment,
) {
	ctx := r.Context()

	e, err := h.ExchangeService.GetExchange(ctx, exchangeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	participants, err := h.ParticipantService.ListParticipants(ctx, exchangeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, status, toAssignmentsResponse(e, set, participants))
}

// HandleRecipient returns who a participant buys for.
//
//	@Summary	Get recipient
//	@Tags		Assignments
//	@Produce	json
//	@Param		id	path		string	true	"Exchange ID"
//	@Param		pid	path		string	true	"Giver participant ID"
//	@Success	200	{object}	exchangesdk.RecipientResponse
//	@Failure	404	{object}	exchangesdk.ErrorResponse	"Participant or assignment not found"
//	@Router		/v1/exchanges/{id}/participants/{pid}/recipient [get]
func (h *AssignmentsHandler) HandleRecipient(w http.ResponseWriter, r *http.Request) {
	giverID := r.PathValue("pid")

	recipient, err := h.AssignmentService.RecipientFor(r.Context(), r.PathValue("id"), giverID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, exchangesdk.RecipientResponse{
		GiverID:   giverID,
		Recipient: toParticipantResponse(recipient),
	})
}

// HandleLock freezes assignments.
//
//	@Summary	Lock assignments
//	@Tags		Assignments
//	@Produce	json
//	@Param		id	path		string	true	"Exchange ID"
//	@Success	200	{object}	exchangesdk.ExchangeResponse
//	@Failure	404	{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Router		/v1/exchanges/{id}/lock [post]
func (h *AssignmentsHandler) HandleLock(w http.ResponseWriter, r *http.Request) {
	e, err := h.AssignmentService.Lock(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExchangeResponse(e))
}

// HandleUnlock allows assignments to be regenerated.
//
//	@Summary	Unlock assignments
//	@Tags		Assignments
//	@Produce	json
//	@Param		id	path		string	true	"Exchange ID"
//	@Success	200	{object}	exchangesdk.ExchangeResponse
//	@Failure	404	{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Router		/v1/exchanges/{id}/lock [delete]
func (h *AssignmentsHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	e, err := h.AssignmentService.Unlock(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExchangeResponse(e))
}

// HandleToggle flips the assignment lock.
//
//	@Summary	Toggle assignment lock
//	@Tags		Assignments
//	@Produce	json
//	@Param		id	path		string	true	"Exchange ID"
//	@Success	200	{object}	exchangesdk.ExchangeResponse
//	@Failure	404	{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Router		/v1/exchanges/{id}/lock/toggle [post]
func (h *AssignmentsHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	e, err := h.AssignmentService.ToggleLock(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toExchangeResponse(e))
}
