package pcberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorVariantsUnwrapViaErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("placing R1: %w", &PlacementInfeasible{ComponentID: "R1", Reason: "no candidate fits"})

	var placementErr *PlacementInfeasible
	assert.True(t, errors.As(wrapped, &placementErr))
	assert.Equal(t, "R1", placementErr.ComponentID)

	var validationErr *ValidationFailure
	assert.False(t, errors.As(wrapped, &validationErr))
}

func TestErrorMessagesIncludeContext(t *testing.T) {
	assert.Contains(t, (&ConfigurationError{Field: "preset", Reason: "unknown"}).Error(), "preset")
	assert.Contains(t, (&RegistryError{Kind: "resistor", Package: "smd-0805", Reason: "no such package"}).Error(), "smd-0805")
	assert.Contains(t, (&RegistryError{Kind: "resistor", Reason: "unknown kind"}).Error(), "resistor")
	assert.Contains(t, (&NetlistError{Op: "connect", Detail: "unknown pin"}).Error(), "unknown pin")
	assert.Contains(t, (&RoutingInfeasible{NetID: "IN", Reason: "budget exceeded"}).Error(), "IN")
	assert.Contains(t, (&ValidationFailure{IssueCount: 3}).Error(), "3")
	assert.Contains(t, (&BackendError{Op: "persist", Detail: "disk full"}).Error(), "disk full")
	assert.Contains(t, (&BudgetExhausted{Iterations: 5, Budget: 5}).Error(), "5/5")
}
