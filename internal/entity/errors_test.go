package entity

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIllegalTransitionErrorMatchesSentinel(t *testing.T) {
	err := &IllegalTransitionError{Kind: "user", Current: "banned", Action: "suspend"}

	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Contains(t, err.Error(), "banned")
	assert.Contains(t, err.Error(), "suspend")

	wrapped := fmt.Errorf("usecase: %w", err)
	assert.ErrorIs(t, wrapped, ErrIllegalTransition)

	var itErr *IllegalTransitionError
	require.ErrorAs(t, wrapped, &itErr)
	assert.Equal(t, "user", itErr.Kind)
}
