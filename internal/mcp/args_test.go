package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringArg(t *testing.T) {
	t.Parallel()

	t.Run("required string present", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"file": "README.md",
		}
		result, err := parseStringArg(argsMap, "file", true)
		require.NoError(t, err)
		assert.Equal(t, "README.md", result)
	})

	t.Run("required string missing", func(t *testing.T) {
		argsMap := map[string]interface{}{}
		result, err := parseStringArg(argsMap, "file", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file parameter is required")
		assert.Empty(t, result)
	})

	t.Run("required string empty", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"file": "",
		}
		result, err := parseStringArg(argsMap, "file", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file cannot be empty")
		assert.Empty(t, result)
	})

	t.Run("optional string missing", func(t *testing.T) {
		argsMap := map[string]interface{}{}
		result, err := parseStringArg(argsMap, "mode", false)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("wrong type", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"file": 42,
		}
		result, err := parseStringArg(argsMap, "file", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file must be a string")
		assert.Empty(t, result)
	})
}

func TestParseIntArg(t *testing.T) {
	t.Parallel()

	t.Run("number present", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"depth": float64(3), // JSON numbers arrive as float64
		}
		assert.Equal(t, 3, parseIntArg(argsMap, "depth", 0))
	})

	t.Run("number missing", func(t *testing.T) {
		argsMap := map[string]interface{}{}
		assert.Equal(t, 6, parseIntArg(argsMap, "depth", 6))
	})

	t.Run("numeric string coerced", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"depth": "2",
		}
		assert.Equal(t, 2, parseIntArg(argsMap, "depth", 0))
	})

	t.Run("non-numeric string falls back to default", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"depth": "deep",
		}
		assert.Equal(t, 6, parseIntArg(argsMap, "depth", 6))
	})

	t.Run("wrong type falls back to default", func(t *testing.T) {
		argsMap := map[string]interface{}{
			"depth": true,
		}
		assert.Equal(t, 1, parseIntArg(argsMap, "depth", 1))
	})
}
