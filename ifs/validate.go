package ifs

import (
	"fmt"
)

// Epsilon absorbs float round-off from repeated edits of the weights
const Epsilon = 1e-6

// ErrorKind names a validation failure
type ErrorKind int

const (
	NoSystems ErrorKind = iota
	BadProbability
	BadProbabilitySum
)

// ValidationError is returned by Validate. Value holds the offending weight
// or sum.
type ValidationError struct {
	Kind  ErrorKind
	Value float64
}

// Sentinels for errors.Is
var (
	ErrNoSystems         = &ValidationError{Kind: NoSystems}
	ErrBadProbability    = &ValidationError{Kind: BadProbability}
	ErrBadProbabilitySum = &ValidationError{Kind: BadProbabilitySum}
)

func (e *ValidationError) Error() string {
	switch e.Kind {
	case BadProbability:
		return "Probability have to be in range 0..=1"
	case BadProbabilitySum:
		return "Probability sum have to be lower than 1"
	default:
		return "The provided list of systems is empty. At least one system is required."
	}
}

// AdditionalInfo returns the offending value for display
func (e *ValidationError) AdditionalInfo() (string, bool) {
	switch e.Kind {
	case BadProbability:
		return fmt.Sprintf("Value: %.2f", e.Value), true
	case BadProbabilitySum:
		return fmt.Sprintf("Sum is %.2f", e.Value), true
	}
	return "", false
}

// Is matches any ValidationError of the same kind
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Validate runs SystemsExist, ProbabilityRange and ProbabilitySum in order
// and returns the first failure.
func Validate(maps MapSet) error {
	if err := SystemsExist(maps); err != nil {
		return err
	}
	if err := ProbabilityRange(maps); err != nil {
		return err
	}
	return ProbabilitySum(maps)
}

// SystemsExist fails on an empty set
func SystemsExist(maps MapSet) error {
	if len(maps) == 0 {
		return &ValidationError{Kind: NoSystems}
	}
	return nil
}

// ProbabilityRange fails on the first weight outside [0, 1+Epsilon].
// NaN is outside every range.
func ProbabilityRange(maps MapSet) error {
	for _, m := range maps {
		if !(m.P >= 0 && m.P <= 1+Epsilon) {
			return &ValidationError{Kind: BadProbability, Value: m.P}
		}
	}
	return nil
}

// ProbabilitySum fails when the weights add up to more than 1+Epsilon
func ProbabilitySum(maps MapSet) error {
	if sum := maps.Sum(); sum > 1+Epsilon {
		return &ValidationError{Kind: BadProbabilitySum, Value: sum}
	}
	return nil
}
