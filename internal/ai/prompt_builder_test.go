package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInstruction(t *testing.T) {
	t.Run("proofread keeps content", func(t *testing.T) {
		got := BuildInstruction(ModeProofread, LengthShort)
		assert.Contains(t, got, "Keep the full content")
		assert.Contains(t, got, "Do NOT summarize")
		assert.NotContains(t, got, "ACTION ITEMS")
		assert.Contains(t, got, `"action_items": [string]`)
	})

	tests := []struct {
		length Length
		want   string
	}{
		{LengthShort, "about 3 lines"},
		{LengthStandard, "concise summary"},
		{LengthLong, "detailed summary"},
	}
	for _, tt := range tests {
		t.Run("summary "+string(tt.length), func(t *testing.T) {
			got := BuildInstruction(ModeSummary, tt.length)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "ACTION ITEMS")
			assert.Contains(t, got, "return an empty array")
			assert.Contains(t, got, "STRICT JSON")
		})
	}

	t.Run("unknown length falls back to standard", func(t *testing.T) {
		assert.Equal(t, BuildInstruction(ModeSummary, LengthStandard), BuildInstruction(ModeSummary, ""))
	})
}

func TestParseMode(t *testing.T) {
	for raw, want := range map[string]Mode{"": ModeSummary, "summary": ModeSummary, "PROOFREAD": ModeProofread} {
		got, err := ParseMode(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("translate")
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Contains(t, err.Error(), "mode must be one of")
}

func TestParseLength(t *testing.T) {
	for raw, want := range map[string]Length{"": LengthStandard, "short": LengthShort, " long ": LengthLong, "standard": LengthStandard} {
		got, err := ParseLength(raw)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseLength("tiny")
	assert.ErrorIs(t, err, ErrInvalidOption)
}
