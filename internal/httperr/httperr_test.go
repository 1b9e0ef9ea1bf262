package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	err := New(404, "Weather not found")
	require.Equal(t, "Weather not found", err.Error())

	status, ok := StatusOf(err)
	require.True(t, ok)
	require.Equal(t, 404, status)

	// Wrapped errors still carry their status.
	wrapped := fmt.Errorf("list installations: %w", err)
	status, ok = StatusOf(wrapped)
	require.True(t, ok)
	require.Equal(t, 404, status)

	_, ok = StatusOf(errors.New("plain"))
	require.False(t, ok)
}
