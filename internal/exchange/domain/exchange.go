package domain

import "time"

type Exchange struct {
	ID                string
	Title             string
	Date              *time.Time // Calendar date of the exchange, nil if not yet scheduled
	Location          string
	Description       string
	SpendingLimit     int
	AssignmentsLocked bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ExchangeDetails holds the organizer-editable fields of an exchange.
type ExchangeDetails struct {
	Date          *time.Time
	Location      string
	Description   string
	SpendingLimit int
}

// ExchangeUpdate carries optional changes to ExchangeDetails; nil fields are
// left untouched. ClearDate unschedules the exchange and wins over Date.
type ExchangeUpdate struct {
	Date          *time.Time
	ClearDate     bool
	Location      *string
	Description   *string
	SpendingLimit *int
}

// Apply returns d with the changes of u merged in.
func (u ExchangeUpdate) Apply(d ExchangeDetails) ExchangeDetails {
	switch {
	case u.ClearDate:
		d.Date = nil
	case u.Date != nil:
		d.Date = u.Date
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.SpendingLimit != nil {
		d.SpendingLimit = *u.SpendingLimit
	}
	return d
}

// Details returns the organizer-editable fields of e.
func (e Exchange) Details() ExchangeDetails {
	return ExchangeDetails{
		Date:          e.Date,
		Location:      e.Location,
		Description:   e.Description,
		SpendingLimit: e.SpendingLimit,
	}
}
