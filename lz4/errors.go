package lz4

import (
	"errors"
	"fmt"
)

// ErrCorrupt is returned for every malformed block. The more specific errors
// below wrap it, so errors.Is(err, ErrCorrupt) reports any decoding failure.
var ErrCorrupt = errors.New("lz4: corrupt block")

// Decoding errors.
var (
	// ErrEmptyInput is returned when the block has no bytes at all, not even
	// the final token.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrCorrupt)
	// ErrTruncatedLength is returned when the block ends inside a length
	// extension.
	ErrTruncatedLength = fmt.Errorf("%w: truncated length field", ErrCorrupt)
	// ErrTruncatedLiterals is returned when fewer literal bytes remain than
	// the token declares.
	ErrTruncatedLiterals = fmt.Errorf("%w: truncated literals", ErrCorrupt)
	// ErrTruncatedOffset is returned when the block ends inside an offset.
	ErrTruncatedOffset = fmt.Errorf("%w: truncated offset", ErrCorrupt)
	// ErrMissingFinalToken is returned when the block ends right after a
	// match, without a literals-only token.
	ErrMissingFinalToken = fmt.Errorf("%w: missing final token", ErrCorrupt)
	// ErrZeroOffset is returned for a match with offset 0.
	ErrZeroOffset = fmt.Errorf("%w: zero offset", ErrCorrupt)
	// ErrOffsetOutOfRange is returned for a match that refers to data before
	// the start of the output.
	ErrOffsetOutOfRange = fmt.Errorf("%w: offset out of range", ErrCorrupt)
)
