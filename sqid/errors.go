package sqid

import "errors"

var (
	// ErrInvalidAlphabet is returned by New when the alphabet is shorter than
	// three symbols, contains a multi-byte symbol, or repeats a symbol.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidMinLength is returned by New when MinLength is negative.
	ErrInvalidMinLength = errors.New("invalid minimum length")

	// ErrInvalidBlocklistEntry is returned by New when a blocklist word cannot
	// be case-folded without changing its byte length.
	ErrInvalidBlocklistEntry = errors.New("invalid blocklist entry")

	// ErrMaxAttempts is returned by Encode when every identifier the retry
	// loop can produce is blocked. It signals misconfiguration (an alphabet
	// too small for the blocklist density), not transient failure.
	ErrMaxAttempts = errors.New("reached max attempts to re-generate the identifier")

	// ErrInvalidSymbol is returned when a symbol is not part of the alphabet
	// slice a numeral is being read with.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrInvalidIdentifier is returned by Decode for malformed input.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)
