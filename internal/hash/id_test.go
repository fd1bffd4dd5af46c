package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		require.Equal(t, ID("temperature"), ID("temperature"))
	})

	t.Run("DistinctNames", func(t *testing.T) {
		require.NotEqual(t, ID("temperature"), ID("Temperature"))
		require.NotEqual(t, ID("a"), ID("b"))
	})

	t.Run("EmptyName", func(t *testing.T) {
		// The empty string hashes like any other input; callers reject empty
		// match names before hashing.
		require.Equal(t, ID(""), ID(""))
	})
}
