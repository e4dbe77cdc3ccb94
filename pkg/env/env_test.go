package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("SONGS_TEST_VARIABLE", "value")

	value, err := GetEnvironmentVariable("SONGS_TEST_VARIABLE")

	require.NoError(t, err)
	assert.Equal(t, "value", value)
}

func TestGetEnvironmentVariableUnset(t *testing.T) {
	_, err := GetEnvironmentVariable("SONGS_TEST_UNSET_VARIABLE")

	assert.Error(t, err)
}

func TestGetEnvironmentVariableWithFallback(t *testing.T) {
	t.Setenv("SONGS_TEST_VARIABLE", "value")

	assert.Equal(t, "value", GetEnvironmentVariableWithFallback("SONGS_TEST_VARIABLE", "fallback"))
	assert.Equal(t, "fallback", GetEnvironmentVariableWithFallback("SONGS_TEST_UNSET_VARIABLE", "fallback"))
}
