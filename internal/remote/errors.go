package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the root of all settings validation errors.
	ErrValidation = errors.New("invalid remote configuration")
	// ErrState is the root of all errors caused by operations that are not
	// allowed in the current device state.
	ErrState = errors.New("invalid remote state")

	ErrPoweredOff   = fmt.Errorf("device is powered off: %w", ErrState)
	ErrChannelRange = fmt.Errorf("channel is outside of the allowed range: %w", ErrState)
	ErrNegativeStep = fmt.Errorf("volume step must be non-negative: %w", ErrState)
)
