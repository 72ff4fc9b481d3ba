package exchangesdk

import "time"

// Participant statuses.
const (
	StatusInvited  = "invited"
	StatusDeclined = "declined"
	StatusActive   = "active"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable error code (e.g., "exchange_locked")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description,omitempty"`

	// Fields maps JSON field names to validation messages
	Fields map[string]string `json:"fields,omitempty"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Exchange Types
// ============================================================================

// CreateExchangeRequest is the body of POST /v1/exchanges.
type CreateExchangeRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Date          string `json:"date,omitempty" validate:"isodate"`
	Location      string `json:"location,omitempty" validate:"max=200"`
	Description   string `json:"description,omitempty" validate:"max=2000"`
	SpendingLimit int    `json:"spending_limit" validate:"gte=0"`
}

// UpdateExchangeRequest is the body of PATCH /v1/exchanges/{id}. Omitted
// fields keep their current value; an empty date clears it.
type UpdateExchangeRequest struct {
	Date          *string `json:"date,omitempty" validate:"omitempty,isodate"`
	Location      *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	SpendingLimit *int    `json:"spending_limit,omitempty" validate:"omitempty,gte=0"`
}

// ExchangeResponse describes one gift exchange.
type ExchangeResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Date              string    `json:"date,omitempty"`
	Location          string    `json:"location,omitempty"`
	Description       string    `json:"description,omitempty"`
	SpendingLimit     int       `json:"spending_limit"`
	AssignmentsLocked bool      `json:"assignments_locked"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ListExchangesResponse is returned by GET /v1/exchanges.
type ListExchangesResponse struct {
	Exchanges []ExchangeResponse `json:"exchanges"`
}

// ============================================================================
// Participant Types
// ============================================================================

// AddParticipantRequest is the body of POST /v1/exchanges/{id}/participants.
type AddParticipantRequest struct {
	Name                   string `json:"name" validate:"required,max=200"`
	Email                  string `json:"email" validate:"required,email,max=254"`
	Status                 string `json:"status,omitempty" validate:"omitempty,oneof=invited declined active"`
	Likes                  string `json:"likes,omitempty" validate:"max=2000"`
	Dislikes               string `json:"dislikes,omitempty" validate:"max=2000"`
	AllergiesSensitivities string `json:"allergies_sensitivities,omitempty" validate:"max=2000"`
}

// UpdateParticipantRequest is the body of PATCH
// /v1/exchanges/{id}/participants/{pid}. Omitted fields are left untouched.
type UpdateParticipantRequest struct {
	Status                 *string `json:"status,omitempty" validate:"omitempty,oneof=invited declined active"`
	Likes                  *string `json:"likes,omitempty" validate:"omitempty,max=2000"`
	Dislikes               *string `json:"dislikes,omitempty" validate:"omitempty,max=2000"`
	AllergiesSensitivities *string `json:"allergies_sensitivities,omitempty" validate:"omitempty,max=2000"`
}

// ParticipantResponse describes one participant of an exchange.
type ParticipantResponse struct {
	ID                     string    `json:"id"`
	ExchangeID             string    `json:"exchange_id"`
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Status                 string    `json:"status"`
	Likes                  string    `json:"likes,omitempty"`
	Dislikes               string    `json:"dislikes,omitempty"`
	AllergiesSensitivities string    `json:"allergies_sensitivities,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ListParticipantsResponse is returned by GET /v1/exchanges/{id}/participants.
type ListParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
}

// ============================================================================
// Assignment Types
// ============================================================================

// AssignmentResponse is one giver -> receiver edge.
type AssignmentResponse struct {
	ID           string    `json:"id"`
	GiverID      string    `json:"giver_id"`
	GiverName    string    `json:"giver_name"`
	ReceiverID   string    `json:"receiver_id"`
	ReceiverName string    `json:"receiver_name"`
	CreatedAt    time.Time `json:"created_at"`
}

// AssignmentsResponse lists an exchange's assignments in chain order: each
// receiver is the giver of the next entry and the last receiver is the first
// giver.
type AssignmentsResponse struct {
	ExchangeID        string               `json:"exchange_id"`
	AssignmentsLocked bool                 `json:"assignments_locked"`
	Assignments       []AssignmentResponse `json:"assignments"`
}

// RecipientResponse names the participant a giver buys for, with the
// preferences they shared.
type RecipientResponse struct {
	GiverID   string              `json:"giver_id"`
	Recipient ParticipantResponse `json:"recipient"`
}
