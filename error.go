package pagesim

import "fmt"

type constError string

const (
	// ErrInvalidConfiguration may be returned from [New], [ParsePolicy],
	// [ParseReferences] and [Simulation.Summary].
	ErrInvalidConfiguration = constError("invalid configuration")
	// ErrOutOfSequence may be returned from [Simulation.Advance]
	// once the reference sequence is exhausted,
	// and from [Simulation.Summary] before it is.
	ErrOutOfSequence = constError("out of sequence")
	// ErrMalformedReference may be returned from [ParseReferences].
	ErrMalformedReference = constError("malformed reference")
)

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: capacity must be >=%d but %d was requested",
		ErrInvalidConfiguration, MinimumCapacity, capacity)
}

func unknownPolicyError(name string) error {
	if name == "" {
		return fmt.Errorf(
			"%w: no replacement policy selected",
			ErrInvalidConfiguration)
	}
	return fmt.Errorf(
		"%w: unknown replacement policy %q",
		ErrInvalidConfiguration, name)
}

func invalidPolicyError(policy Policy) error {
	if policy == 0 {
		return unknownPolicyError("")
	}
	return unknownPolicyError(policy.String())
}

func emptySequenceError() error {
	return fmt.Errorf(
		"%w: reference sequence is empty",
		ErrInvalidConfiguration)
}

func exhaustedError(length int) error {
	return fmt.Errorf(
		"%w: all %d references have been processed",
		ErrOutOfSequence, length)
}

func incompleteError(position, length int) error {
	return fmt.Errorf(
		"%w: %d of %d references processed",
		ErrOutOfSequence, position, length)
}

func malformedReferenceError(position int, token string, err error) error {
	return fmt.Errorf(
		"%w: reference %d (%q): %w",
		ErrMalformedReference, position, token, err)
}
