package game

import "errors"

var (
	ErrIllegalPlacement      = errors.New("illegal placement")
	ErrInsufficientResources = errors.New("insufficient resources")
	ErrInvalidTurnAction     = errors.New("action not allowed in this phase")
	ErrInvalidPool           = errors.New("invalid sampling pool")
	ErrInvalidMap            = errors.New("invalid board topology")
	ErrSnapshot              = errors.New("snapshot is read-only")
)
