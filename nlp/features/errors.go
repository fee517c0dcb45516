package features

import "errors"

var (
	// ErrParseFailure wraps any error returned by the Parser.
	ErrParseFailure = errors.New("parse failure")
	// ErrInvalidConfiguration is returned for a rank cutoff <= 0.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInternalConsistency means a filtered lemma is missing from the
	// frequency table. It points at a preprocessing bug.
	ErrInternalConsistency = errors.New("internal consistency fault")
)
