package domain

import "time"

// Assignment is one giver -> receiver edge of an exchange's gift cycle.
type Assignment struct {
	ID         string
	ExchangeID string
	GiverID    string
	ReceiverID string
	CreatedAt  time.Time
}
