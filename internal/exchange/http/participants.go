package http

import (
	"net/http"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/internal/exchange/service"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/astromitts/gifterator3000/pkg/httpx"
)

type ParticipantsHandler struct {
	ParticipantService *service.ParticipantService
	AssignmentService  *service.AssignmentService
}

// HandleAdd enrols a participant in an exchange.
//
//	@Summary		Add participant
//	@Description	Enrols a participant. Status defaults to invited; only active participants are drawn into assignments.
//	@Tags			Participants
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Exchange ID"
//	@Param			request	body		exchangesdk.AddParticipantRequest	true	"Participant"
//	@Success		201		{object}	exchangesdk.ParticipantResponse
//	@Failure		400		{object}	exchangesdk.ErrorResponse	"Validation error"
//	@Failure		404		{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Failure		409		{object}	exchangesdk.ErrorResponse	"Email already enrolled"
//	@Router			/v1/exchanges/{id}/participants [post]
func (h *ParticipantsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req exchangesdk.AddParticipantRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	p, err := h.ParticipantService.AddParticipant(r.Context(), r.PathValue("id"), domain.Participant{
		Name:                   req.Name,
		Email:                  req.Email,
		Status:                 domain.ParticipantStatus(req.Status),
		Likes:                  req.Likes,
		Dislikes:               req.Dislikes,
		AllergiesSensitivities: req.AllergiesSensitivities,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toParticipantResponse(p))
}

// HandleList lists the participants of an exchange.
//
//	@Summary	List participants
//	@Tags		Participants
//	@Produce	json
//	@Param		id	path		string	true	"Exchange ID"
//	@Success	200	{object}	exchangesdk.ListParticipantsResponse
//	@Failure	404	{object}	exchangesdk.ErrorResponse	"Exchange not found"
//	@Router		/v1/exchanges/{id}/participants [get]
func (h *ParticipantsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	participants, err := h.ParticipantService.ListParticipants(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := exchangesdk.ListParticipantsResponse{
		Participants: make([]exchangesdk.ParticipantResponse, len(participants)),
	}
	for i, p := range participants {
		resp.Participants[i] = toParticipantResponse(p)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdate patches a participant's status or preferences.
//
//	@Summary	Update participant
//	@Tags		Participants
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Exchange ID"
//	@Param		pid		path		string								true	"Participant ID"
//	@Param		request	body		exchangesdk.UpdateParticipantRequest	true	"Changed fields"
//	@Success	200		{object}	exchangesdk.ParticipantResponse
//	@Failure	400		{object}	exchangesdk.ErrorResponse	"Validation error"
//	@Failure	404		{object}	exchangesdk.ErrorResponse	"Participant not found"
//	@Router		/v1/exchanges/{id}/participants/{pid} [patch]
func (h *ParticipantsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req exchangesdk.UpdateParticipantRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	if errs := req.Validate(); errs != nil {
		writeValidationError(w, errs)
		return
	}

	u := domain.ParticipantUpdate{
		Likes:                  req.Likes,
		Dislikes:               req.Dislikes,
		AllergiesSensitivities: req.AllergiesSensitivities,
	}
	if req.Status != nil {
		status := domain.ParticipantStatus(*req.Status)
		u.Status = &status
	}

	p, err := h.ParticipantService.UpdateParticipant(r.Context(), r.PathValue("id"), r.PathValue("pid"), u)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toParticipantResponse(p))
}

// HandleRemove takes a participant out of an exchange.
//
//	@Summary		Remove participant
//	@Description	Removes a participant. When they are part of the current assignments the whole set is cleared and must be regenerated; while assignments are locked this is refused.
//	@Tags			Participants
//	@Param			id	path	string	true	"Exchange ID"
//	@Param			pid	path	string	true	"Participant ID"
//	@Success		204
//	@Failure		404	{object}	exchangesdk.ErrorResponse	"Exchange or participant not found"
//	@Failure		409	{object}	exchangesdk.ErrorResponse	"Participant is part of locked assignments"
//	@Router			/v1/exchanges/{id}/participants/{pid} [delete]
func (h *ParticipantsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	err := h.AssignmentService.RemoveParticipant(r.Context(), r.PathValue("id"), r.PathValue("pid"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
