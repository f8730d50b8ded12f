package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SUMMARY_TEST_VAR", "")
	assert.Equal(t, "fallback", GetEnvOrDefault("SUMMARY_TEST_VAR", "fallback"))

	t.Setenv("SUMMARY_TEST_VAR", "  set  ")
	assert.Equal(t, "set", GetEnvOrDefault("SUMMARY_TEST_VAR", "fallback"))
}

func TestGetEnvIntOrDefault(t *testing.T) {
	t.Setenv("SUMMARY_TEST_PORT", "")
	n, err := GetEnvIntOrDefault("SUMMARY_TEST_PORT", 587)
	require.NoError(t, err)
	assert.Equal(t, 587, n)

	t.Setenv("SUMMARY_TEST_PORT", "465")
	n, err = GetEnvIntOrDefault("SUMMARY_TEST_PORT", 587)
	require.NoError(t, err)
	assert.Equal(t, 465, n)

	t.Setenv("SUMMARY_TEST_PORT", "four")
	_, err = GetEnvIntOrDefault("SUMMARY_TEST_PORT", 587)
	assert.ErrorContains(t, err, "SUMMARY_TEST_PORT")
}
