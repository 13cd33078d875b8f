package fleet

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrInvalidWeight  = errors.New("invalid weight")

	ErrNoCandidateFound     = errors.New("no assignment candidate found")
	ErrOrderAlreadyAssigned = errors.New("order already assigned")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrCourierStateConflict = errors.New("courier state conflict")
)
