package service

import "errors"

var (
	ErrExchangeNotFound    = errors.New("exchange not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAssignmentNotFound  = errors.New("participant has no assignment")
	ErrTitleTaken          = errors.New("exchange title already taken")
	ErrEmailTaken          = errors.New("email already enrolled in this exchange")
	ErrInvalidStatus       = errors.New("invalid participant status")
	ErrInvalidExchange     = errors.New("invalid exchange details")
	ErrInvalidParticipant  = errors.New("invalid participant details")
	ErrParticipantAssigned = errors.New("participant is part of locked assignments")
)
