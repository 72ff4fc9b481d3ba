package http

import (
	"time"

	"github.com/astromitts/gifterator3000/internal/exchange/domain"
	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
)

func toExchangeResponse(e domain.Exchange) exchangesdk.ExchangeResponse {
	resp := exchangesdk.ExchangeResponse{
		ID:                e.ID,
		Title:             e.Title,
		Location:          e.Location,
		Description:       e.Description,
		SpendingLimit:     e.SpendingLimit,
		AssignmentsLocked: e.AssignmentsLocked,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
	if e.Date != nil {
		resp.Date = e.Date.Format(exchangesdk.DateLayout)
	}
	return resp
}

func toParticipantResponse(p domain.Participant) exchangesdk.ParticipantResponse {
	return exchangesdk.ParticipantResponse{
		ID:                     p.ID,
		ExchangeID:             p.ExchangeID,
		Name:                   p.Name,
		Email:                  p.Email,
		Status:                 string(p.Status),
		Likes:                  p.Likes,
		Dislikes:               p.Dislikes,
		AllergiesSensitivities: p.AllergiesSensitivities,
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
}

// toAssignmentsResponse keeps the order of set and resolves participant names.
func toAssignmentsResponse(
	e domain.Exchange,
	set []domain.Assignment,
	participants []domain.Participant,
) exchangesdk.AssignmentsResponse {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}

	resp := exchangesdk.AssignmentsResponse{
		ExchangeID:        e.ID,
		AssignmentsLocked: e.AssignmentsLocked,
		Assignments:       make([]exchangesdk.AssignmentResponse, len(set)),
	}
	for i, a := range set {
		resp.Assignments[i] = exchangesdk.AssignmentResponse{
			ID:           a.ID,
			GiverID:      a.GiverID,
			GiverName:    names[a.GiverID],
			ReceiverID:   a.ReceiverID,
			ReceiverName: names[a.ReceiverID],
			CreatedAt:    a.CreatedAt,
		}
	}
	return resp
}

// parseDate turns a validated wire date into a domain date; "" means unset.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(exchangesdk.DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
