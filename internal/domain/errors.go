package domain

import "errors"

// Sentinel errors returned by the engine and its adapters. Callers branch
// with errors.Is; adapters wrap these with context via fmt.Errorf("%w").
var (
	ErrNotFound               = errors.New("not found")
	ErrAlreadyClosed          = errors.New("moment already closed")
	ErrInvalidRange           = errors.New("invalid time range")
	ErrTimestampOutOfRange    = errors.New("timestamp outside moment interval")
	ErrCyclicTrigger          = errors.New("cyclic trigger link")
	ErrUnknownCategory        = errors.New("unknown category")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrConcurrentModification = errors.New("concurrent modification")
)
