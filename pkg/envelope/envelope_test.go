package envelope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEvidenceRawPayloadAcceptsWellFormed(t *testing.T) {
	err := ValidateEvidenceRawPayload(map[string]any{
		"source_id":   "source-1",
		"captured_at": "2026-01-01T00:00:00Z",
		"data":        map[string]any{"x": 1},
	})
	assert.NoError(t, err)
}

func TestValidateEvidenceRawPayloadRejectsMissingField(t *testing.T) {
	err := ValidateEvidenceRawPayload(map[string]any{
		"source_id": "source-1",
	})
	assert.Error(t, err)
}

func TestValidateExecutorRawResponseAcceptsWellFormed(t *testing.T) {
	err := ValidateExecutorRawResponse(map[string]any{
		"executor_id": "executor-1",
		"status":      "SUCCESS",
	})
	assert.NoError(t, err)
}

func TestValidateExecutorRawResponseRejectsUnknownStatus(t *testing.T) {
	err := ValidateExecutorRawResponse(map[string]any{
		"executor_id": "executor-1",
		"status":      "ROGUE",
	})
	assert.Error(t, err)
}

func TestValidateExecutorRawResponseRejectsMissingExecutorID(t *testing.T) {
	err := ValidateExecutorRawResponse(map[string]any{
		"status": "SUCCESS",
	})
	assert.Error(t, err)
}
