package ai

import "strings"

// BuildInstruction returns the system message for the completion call, shaped by mode and length.
func BuildInstruction(mode Mode, length Length) string {
	var b strings.Builder

	if mode == ModeProofread {
		b.WriteString(proofreadPrompt)
		b.WriteString(jsonContract)
		return b.String()
	}

	b.WriteString(summaryPromptHead)
	switch length {
	case LengthShort:
		b.WriteString(summaryShort)
	case LengthLong:
		b.WriteString(summaryLong)
	default:
		b.WriteString(summaryStandard)
	}
	b.WriteString(summaryPromptTail)
	b.WriteString(jsonContract)

	return b.String()
}
