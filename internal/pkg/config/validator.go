package config

import (
	"fmt"
	"time"
)

// ValidateIntRange checks that v lies in [min, max] inclusive.
func ValidateIntRange(v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("value %d is outside the valid range [%d,%d]", v, min, max)
	}
	return nil
}

// ValidatePositiveInt checks that v is strictly positive.
func ValidatePositiveInt(v int) error {
	if v <= 0 {
		return fmt.Errorf("value %d must be positive", v)
	}
	return nil
}

// ValidatePositiveDuration checks that d is strictly positive.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("duration %v must be positive", d)
	}
	return nil
}
