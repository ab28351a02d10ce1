package ai

import (
	"encoding/json"
	"fmt"
)

type SummaryResult struct {
	Summary     string   `json:"summary"`
	ActionItems []string `json:"action_items"`
}

// ParseSummary decodes the completion text. Missing fields default to empty;
// anything that is not a JSON object is an error.
func ParseSummary(text string) (SummaryResult, error) {
	var parsed SummaryResult
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return SummaryResult{}, fmt.Errorf("parse summary response: %w", err)
	}

	if parsed.ActionItems == nil {
		parsed.ActionItems = []string{}
	}
	return parsed, nil
}
