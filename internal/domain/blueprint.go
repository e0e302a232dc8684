package domain

import (
	"fmt"
	"time"
)

// DurationMode describes how a moment of a category reaches its end.
type DurationMode string

const (
	// DurationEventBased moments stay open until an explicit or linked close.
	DurationEventBased DurationMode = "event-based"
	// DurationFixed moments auto-close a fixed number of seconds after opening.
	DurationFixed DurationMode = "fixed"
)

// ButtonDefinition describes the behavior of one category button in a
// blueprint: how its moments open and close, which categories it drags
// along, and how derived clips extend around its interval.
type ButtonDefinition struct {
	Category         string
	DisplayName      string
	Color            string
	Hotkey           string
	DurationMode     DurationMode
	FixedDurationSec int
	// ActivationLinks are categories auto-opened when this one opens.
	ActivationLinks []string
	// DeactivationLinks are categories auto-closed when this one opens.
	DeactivationLinks []string
	// ExclusionSet holds categories that must not be open at the same
	// time as this one. Exclusion is bidirectional.
	ExclusionSet []string
	// LeadSec/LagSec extend a clip derived from this category's moments
	// before the start and after the end.
	LeadSec int
	LagSec  int
}

// Blueprint is a named, versioned set of button definitions. It is pure
// configuration: loaded once per session and treated as immutable for
// the duration of a propagation.
type Blueprint struct {
	ID        string
	Name      string
	Version   int
	Buttons   []ButtonDefinition
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resolve returns the button definition for a category. Unknown
// categories are an error, not implicit new categories.
func (b *Blueprint) Resolve(category string) (*ButtonDefinition, error) {
	for i := range b.Buttons {
		if b.Buttons[i].Category == category {
			return &b.Buttons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
}

// Validate checks the blueprint for duplicate categories, dangling link
// targets, self-links and invalid fixed durations.
func (b *Blueprint) Validate() error {
	known := make(map[string]bool, len(b.Buttons))
	for _, btn := range b.Buttons {
		if btn.Category == "" {
			return fmt.Errorf("button with empty category")
		}
		if known[btn.Category] {
			return fmt.Errorf("duplicate category %q", btn.Category)
		}
		known[btn.Category] = true
	}

	for _, btn := range b.Buttons {
		if btn.DurationMode == DurationFixed && btn.FixedDurationSec <= 0 {
			return fmt.Errorf("category %q: fixed duration must be positive", btn.Category)
		}
		for _, set := range [][]string{btn.ActivationLinks, btn.DeactivationLinks, btn.ExclusionSet} {
			for _, target := range set {
				if !known[target] {
					return fmt.Errorf("category %q links to %w: %s", btn.Category, ErrUnknownCategory, target)
				}
				if target == btn.Category {
					return fmt.Errorf("category %q: %w: self-link", btn.Category, ErrCyclicTrigger)
				}
			}
		}
	}
	return nil
}

// Categories returns the set of category keys defined by the blueprint.
func (b *Blueprint) Categories() []string {
	out := make([]string, 0, len(b.Buttons))
	for _, btn := range b.Buttons {
		out = append(out, btn.Category)
	}
	return out
}
