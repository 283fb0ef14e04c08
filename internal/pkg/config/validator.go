package config

import (
	"fmt"
	"regexp"
)

var paramNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_\-]*$`)

// ValidateIntRange validates that an integer is within the specified range (inclusive).
//
// Example:
//
//	// Validate the default limit is between 1 and 100
//	err := ValidateIntRange(25, 1, 100)
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}

	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}

	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}

	return nil
}

// ValidatePositiveInt validates that an integer is strictly greater than zero.
func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %d", value)
	}
	return nil
}

// ValidateNonNegativeInt validates that an integer is zero or greater.
func ValidateNonNegativeInt(value int) error {
	if value < 0 {
		return fmt.Errorf("value must be non-negative, got %d", value)
	}
	return nil
}

// ValidateParamName validates a query parameter name.
// Names must start with a letter or underscore and may contain letters,
// digits, underscores and dashes. Regex metacharacters are rejected since
// the name is spliced into a pattern by the URL rewriter.
func ValidateParamName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid parameter name: cannot be empty")
	}
	if !paramNamePattern.MatchString(name) {
		return fmt.Errorf("invalid parameter name '%s': must match %s", name, paramNamePattern.String())
	}
	return nil
}
