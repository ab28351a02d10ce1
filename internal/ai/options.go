package ai

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects what the completion does with the transcript.
type Mode string

const (
	ModeSummary   Mode = "summary"
	ModeProofread Mode = "proofread"
)

// Length selects summary verbosity. Ignored in proofread mode.
type Length string

const (
	LengthShort    Length = "short"
	LengthStandard Length = "standard"
	LengthLong     Length = "long"
)

var ErrInvalidOption = errors.New("invalid option")

// ParseMode maps form input to a Mode. Empty input means summary.
func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case "":
		return ModeSummary, nil
	case ModeSummary, ModeProofread:
		return m, nil
	default:
		return "", fmt.Errorf("%w: mode must be one of: summary, proofread", ErrInvalidOption)
	}
}

// ParseLength maps form input to a Length. Empty input means standard.
func ParseLength(raw string) (Length, error) {
	switch l := Length(strings.ToLower(strings.TrimSpace(raw))); l {
	case "":
		return LengthStandard, nil
	case LengthShort, LengthStandard, LengthLong:
		return l, nil
	default:
		return "", fmt.Errorf("%w: summary_level must be one of: short, standard, long", ErrInvalidOption)
	}
}
