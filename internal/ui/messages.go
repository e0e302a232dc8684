package ui

import (
	"time"

	"filmroom/internal/domain"
	"filmroom/internal/services"
)

// tickMsg drives the session clock
type tickMsg time.Time

// actionMsg reports the outcome of an activate/deactivate/close
type actionMsg struct {
	label  string
	result *services.ActivationResult
	err    error
}

// openMomentsMsg refreshes the open moment list
type openMomentsMsg struct {
	open []domain.Moment
	err  error
}
