package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Test Group 1: LoadEnvString
// ============================================================================

func TestLoadEnvString_WithValue(t *testing.T) {
	t.Setenv("TEST_STRING", "custom_value")

	result := LoadEnvString("TEST_STRING", "default_value")

	assert.Equal(t, "custom_value", result)
}

func TestLoadEnvString_WithoutValue(t *testing.T) {
	result := LoadEnvString("TEST_STRING_UNSET", "default_value")

	assert.Equal(t, "default_value", result)
}

func TestLoadEnvString_EmptyString(t *testing.T) {
	t.Setenv("TEST_STRING", "")

	result := LoadEnvString("TEST_STRING", "default_value")

	assert.Equal(t, "default_value", result)
}

// ============================================================================
// Test Group 2: LoadEnvWithFallback
// ============================================================================

func TestLoadEnvWithFallback_WithValidValue(t *testing.T) {
	t.Setenv("TEST_PARAM", "p")

	result := LoadEnvWithFallback("TEST_PARAM", "page", ValidateParamName)

	assert.Equal(t, "p", result.Value)
	assert.Empty(t, result.Warnings)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvWithFallback_WithoutValue(t *testing.T) {
	result := LoadEnvWithFallback("TEST_PARAM_UNSET", "page", ValidateParamName)

	assert.Equal(t, "page", result.Value)
	assert.Empty(t, result.Warnings)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvWithFallback_NoValidator(t *testing.T) {
	t.Setenv("TEST_PARAM", "page[]")

	result := LoadEnvWithFallback("TEST_PARAM", "page", nil)

	assert.Equal(t, "page[]", result.Value)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvWithFallback_InvalidValue(t *testing.T) {
	t.Setenv("TEST_PARAM", "page=(")

	result := LoadEnvWithFallback("TEST_PARAM", "page", ValidateParamName)

	assert.Equal(t, "page", result.Value)
	assert.True(t, result.FallbackApplied)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "Invalid TEST_PARAM='page=('")
	assert.Contains(t, result.Warnings[0], "falling back to default 'page'")
}

// ============================================================================
// Test Group 3: LoadEnvInt
// ============================================================================

func TestLoadEnvInt_WithValidValue(t *testing.T) {
	t.Setenv("TEST_INT", "50")

	result := LoadEnvInt("TEST_INT", 25, ValidatePositiveInt)

	assert.Equal(t, 50, result.Value)
	assert.Empty(t, result.Warnings)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvInt_WithoutValue(t *testing.T) {
	result := LoadEnvInt("TEST_INT_UNSET", 25, ValidatePositiveInt)

	assert.Equal(t, 25, result.Value)
	assert.False(t, result.FallbackApplied)
}

func TestLoadEnvInt_ZeroValue(t *testing.T) {
	t.Setenv("TEST_INT", "0")

	nonNegative := LoadEnvInt("TEST_INT", 25, ValidateNonNegativeInt)
	positive := LoadEnvInt("TEST_INT", 25, ValidatePositiveInt)

	assert.Equal(t, 0, nonNegative.Value)
	assert.False(t, nonNegative.FallbackApplied)
	assert.Equal(t, 25, positive.Value)
	assert.True(t, positive.FallbackApplied)
}

func TestLoadEnvInt_InvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "letters", value: "abc"},
		{name: "decimal", value: "2.5"},
		{name: "trailing garbage", value: "12abc"},
		{name: "leading space", value: " 12"},
		{name: "trailing space", value: "12 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)

			result := LoadEnvInt("TEST_INT", 25, nil)

			assert.Equal(t, 25, result.Value)
			assert.True(t, result.FallbackApplied)
			require.Len(t, result.Warnings, 1)
			assert.Contains(t, result.Warnings[0], "invalid integer format")
		})
	}
}

func TestLoadEnvInt_AboveMaximum(t *testing.T) {
	t.Setenv("TEST_INT", "500")

	result := LoadEnvInt("TEST_INT", 25, func(v int) error {
		return ValidateIntRange(v, 1, 100)
	})

	assert.Equal(t, 25, result.Value)
	assert.True(t, result.FallbackApplied)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "exceeds maximum 100")
}

func TestConfigLoadResult_TypeAssertion_Int(t *testing.T) {
	t.Setenv("TEST_INT", "7")

	result := LoadEnvInt("TEST_INT", 5, nil)

	value, ok := result.Value.(int)
	require.True(t, ok)
	assert.Equal(t, 7, value)
}
