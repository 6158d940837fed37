package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("OPTIMIZATION_SUPERSEDED", "superseded", map[string]int{"attempt": 2}, false, "req-1")

	assert.Equal(t, "OPTIMIZATION_SUPERSEDED", resp.Error.Code)
	assert.Equal(t, map[string]int{"attempt": 2}, resp.Error.Details)
	assert.Equal(t, "req-1", resp.Meta.RequestID)

	hidden := NewErrorResponse("INTERNAL_ERROR", "boom", "dial tcp", true, "req-2")
	assert.Nil(t, hidden.Error.Details)
}

func TestInfoFrom(t *testing.T) {
	info := InfoFrom(ErrOptimizationOutdated)
	assert.Equal(t, "OPTIMIZATION_OUTDATED", info.Code)
	assert.Nil(t, info.Details)

	withDetails := ErrOptimizationOutdated.WithDetails("stop moved")
	assert.Equal(t, http.StatusConflict, withDetails.HTTPCode())
	assert.Equal(t, "stop moved", InfoFrom(withDetails).Details)
}
