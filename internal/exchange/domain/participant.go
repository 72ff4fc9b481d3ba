package domain

import "time"

type ParticipantStatus string

const (
	StatusInvited  ParticipantStatus = "invited"
	StatusDeclined ParticipantStatus = "declined"
	StatusActive   ParticipantStatus = "active"
)

// Valid reports whether s is one of the known participant statuses.
func (s ParticipantStatus) Valid() bool {
	switch s {
	case StatusInvited, StatusDeclined, StatusActive:
		return true
	default:
		return false
	}
}

// Eligible reports whether a participant with this status takes part in
// assignment generation.
func (s ParticipantStatus) Eligible() bool { return s == StatusActive }

type Participant struct {
	ID                     string
	ExchangeID             string
	Name                   string
	Email                  string // Contact only, never used as an assignment key
	Status                 ParticipantStatus
	Likes                  string
	Dislikes               string
	AllergiesSensitivities string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// ParticipantUpdate carries optional changes; nil fields are left untouched.
type ParticipantUpdate struct {
	Status                 *ParticipantStatus
	Likes                  *string
	Dislikes               *string
	AllergiesSensitivities *string
}
