package finforecast

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedMethod = errors.New("unsupported forecast method")
	ErrInvalidParameter  = errors.New("invalid forecast parameter")
)

func validateHorizon(periods int) error {
	if periods < 1 {
		return fmt.Errorf("periods must be at least 1, got %d, %w", periods, ErrInvalidParameter)
	}
	return nil
}
