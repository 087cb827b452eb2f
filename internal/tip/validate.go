package tip

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMinimum is the lowest custom tip percentage accepted.
const DefaultMinimum = 15

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrBelowMinimum  = errors.New("below minimum")
)

// Outcome classifies a custom tip submission.
type Outcome int

const (
	// OutcomeNone means nothing was submitted because the sheet was closed.
	OutcomeNone Outcome = iota
	OutcomeAccepted
	OutcomeInvalidNumber
	OutcomeBelowMinimum
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeAccepted:
		return "Accepted"
	case OutcomeInvalidNumber:
		return "InvalidNumber"
	case OutcomeBelowMinimum:
		return "BelowMinimum"
	}

	return "Unknown"
}

// Validate trims text and parses it as a whole percentage no lower than minimum.
func Validate(text string, minimum int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}

	if value < minimum {
		return value, fmt.Errorf("%w: %d < %d", ErrBelowMinimum, value, minimum)
	}

	return value, nil
}

// Classify maps a Validate error onto its Outcome.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, ErrBelowMinimum):
		return OutcomeBelowMinimum
	default:
		return OutcomeInvalidNumber
	}
}

// Message returns the inline text shown for a failed outcome, or "" when accepted.
func Message(o Outcome, minimum int) string {
	switch o {
	case OutcomeInvalidNumber:
		return "Please enter a valid number."
	case OutcomeBelowMinimum:
		return fmt.Sprintf("Minimum tip is %d%%. Please enter a higher tip amount.", minimum)
	}

	return ""
}
