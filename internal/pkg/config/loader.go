// Package config provides generic environment-variable loaders with
// validation and automatic fallback. Loaders never return errors: a value
// that fails to parse or validate falls back to its default and surfaces a
// warning for the caller to log.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// LoadResult is the outcome of loading a single configuration value.
//
// Fields:
//   - Value: the loaded value (the default when a fallback was applied)
//   - Warnings: one message per fallback applied
//   - FallbackApplied: true when the default was used due to a bad value
type LoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// LoadEnvString loads a string from an environment variable, returning the
// default when the variable is unset. No validation is performed.
func LoadEnvString(envKey, defaultValue string) string {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadEnvInt loads an integer from an environment variable with parsing,
// optional validation and fallback to the default on failure.
//
// Example:
//
//	result := LoadEnvInt("TLDR_PERCENTAGE", 30, func(v int) error {
//	    return ValidateIntRange(v, 1, 100)
//	})
//	percentage := result.Value.(int)
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) LoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return LoadResult{Value: defaultValue}
	}

	parsed, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback(envKey, valueStr, defaultValue, fmt.Errorf("invalid integer format"))
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(envKey, valueStr, defaultValue, err)
		}
	}
	return LoadResult{Value: parsed}
}

// LoadEnvDuration loads a time.Duration from an environment variable with
// parsing, optional validation and fallback to the default on failure.
// Values use Go duration syntax ("30s", "1h30m").
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) LoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return LoadResult{Value: defaultValue}
	}

	parsed, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback(envKey, valueStr, defaultValue, err)
	}
	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(envKey, valueStr, defaultValue, err)
		}
	}
	return LoadResult{Value: parsed}
}

// LoadEnvBool loads a boolean from an environment variable, accepting the
// strconv.ParseBool forms ("1", "t", "true", "0", "f", "false", any case),
// with fallback to the default on failure.
func LoadEnvBool(envKey string, defaultValue bool) LoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return LoadResult{Value: defaultValue}
	}

	parsed, err := strconv.ParseBool(valueStr)
	if err != nil {
		return fallback(envKey, valueStr, defaultValue,
			fmt.Errorf("invalid boolean format, expected 'true' or 'false'"))
	}
	return LoadResult{Value: parsed}
}

// fallback builds the failure LoadResult shared by all loaders.
func fallback(envKey, value string, defaultValue interface{}, cause error) LoadResult {
	return LoadResult{
		Value: defaultValue,
		Warnings: []string{fmt.Sprintf(
			"Invalid %s='%s': %v, falling back to default '%v'",
			envKey, value, cause, defaultValue,
		)},
		FallbackApplied: true,
	}
}
