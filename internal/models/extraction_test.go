package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionResultJSON(t *testing.T) {
	t.Run("failed result keeps every key", func(t *testing.T) {
		data, err := json.Marshal(ExtractionResult{Error: "boom"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"kills":0,"placement":0,"confidence":0,"raw_text":"","error":"boom"}`, string(data))
	})

	t.Run("error key omitted when empty", func(t *testing.T) {
		data, err := json.Marshal(ExtractionResult{Kills: 5, Placement: 3, Confidence: 0.9, RawText: "Kills: 5"})
		require.NoError(t, err)

		var got map[string]any
		require.NoError(t, json.Unmarshal(data, &got))
		assert.NotContains(t, got, "error")
		assert.Equal(t, "Kills: 5", got["raw_text"])
	})
}

func TestNeedsManualReview(t *testing.T) {
	tests := []struct {
		name   string
		result ExtractionResult
		failed bool
		review bool
	}{
		{
			name:   "failed result",
			result: ExtractionResult{Confidence: 0.99, Error: "not implemented"},
			failed: true,
			review: true,
		},
		{
			name:   "low confidence",
			result: ExtractionResult{Kills: 2, Placement: 1, Confidence: 0.5},
			review: true,
		},
		{
			name:   "at threshold",
			result: ExtractionResult{Kills: 2, Placement: 1, Confidence: ManualReviewThreshold},
		},
		{
			name:   "zero value",
			result: ExtractionResult{},
			review: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.failed, tt.result.Failed())
			assert.Equal(t, tt.review, tt.result.NeedsManualReview())
		})
	}
}
