// Package settings holds the dashboard's display preferences and default
// contract. The original UI kept these in per-session state; here they
// live in one explicit, guarded store.
package settings

import (
	"errors"
	"fmt"
	"sync"

	"github.com/contactkeval/option-quote/internal/logger"
	"github.com/contactkeval/option-quote/internal/pricing"
)

var (
	ErrUnknownTheme       = errors.New("unknown theme")
	ErrDecimalPlacesRange = errors.New("decimal places out of range")
)

// Settings is the dashboard preference record.
type Settings struct {
	Theme         string         `json:"theme"`          // "light" or "dark"
	Currency      string         `json:"currency"`       // display prefix, e.g. "$"
	DecimalPlaces int            `json:"decimal_places"` // 0..8
	Defaults      pricing.Params `json:"defaults"`       // contract pre-filled in the quote form
}

// Defaults returns the shipped settings, pre-filling the standard
// textbook contract.
func Defaults() Settings {
	return Settings{
		Theme:         "light",
		Currency:      "$",
		DecimalPlaces: 4,
		Defaults: pricing.Params{
			Spot:           100,
			Strike:         100,
			TimeToMaturity: 1,
			Volatility:     0.20,
			RiskFreeRate:   0.05,
		},
	}
}

// Validate checks the record. The default contract goes through the
// pricing validator, keeping one source of truth for parameter rules.
func (s Settings) Validate() error {
	switch s.Theme {
	case "light", "dark":
		// ok
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTheme, s.Theme)
	}
	if s.DecimalPlaces < 0 || s.DecimalPlaces > 8 {
		return fmt.Errorf("%w: %d", ErrDecimalPlacesRange, s.DecimalPlaces)
	}
	return s.Defaults.Validate()
}

// Store guards the live settings record. Safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	cur Settings
}

func NewStore() *Store {
	return &Store{cur: Defaults()}
}

func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Update replaces the record after validation; an invalid update leaves
// the stored value untouched.
func (s *Store) Update(next Settings) error {
	if err := next.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = next
	s.mu.Unlock()

	logger.Infof("event=settings_updated theme=%s decimals=%d", next.Theme, next.DecimalPlaces)
	return nil
}
