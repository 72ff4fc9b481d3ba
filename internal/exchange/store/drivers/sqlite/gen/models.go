// Written by hand in the layout sqlc emits for sqlc.yaml; update together
// with the files under queries/.

package gen

import (
	"database/sql"
)

type Assignment struct {
	ID         string
	ExchangeID string
	GiverID    string
	ReceiverID string
	CreatedAt  int64
}

type Exchange struct {
	ID                string
	Title             string
	Date              sql.NullString
	Location          string
	Description       string
	SpendingLimit     int64
	AssignmentsLocked bool
	CreatedAt         int64
	UpdatedAt         int64
}

type Participant struct {
	ID                     string
	ExchangeID             string
	Name                   string
	Email                  string
	Status                 string
	Likes                  string
	Dislikes               string
	AllergiesSensitivities string
	CreatedAt              int64
	UpdatedAt              int64
}
