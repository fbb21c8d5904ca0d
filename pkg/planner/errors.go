package planner

import "errors"

// Planner-specific errors.
var (
	ErrBoardAuthentication = errors.New("failed to resolve Thunderdome user")
	ErrLabelPriorityPairs  = errors.New("label priority list must have even length")
	ErrInvalidPriority     = errors.New("priority must be one of 1,2,3,4,5,6,99")
)
