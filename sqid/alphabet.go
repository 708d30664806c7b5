package sqid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// validateAlphabet checks the shape rules for a candidate alphabet: at least
// three symbols, every symbol a single byte, no symbol repeated.
func validateAlphabet(alphabet string) error {
	if len(alphabet) != utf8.RuneCountInString(alphabet) {
		return fmt.Errorf("%w: alphabet must not contain multi-byte characters", ErrInvalidAlphabet)
	}
	if len(alphabet) < minAlphabetLength {
		return fmt.Errorf("%w: alphabet length must be at least %d", ErrInvalidAlphabet, minAlphabetLength)
	}

	seen := make(map[byte]struct{}, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		if _, ok := seen[alphabet[i]]; ok {
			return fmt.Errorf("%w: alphabet must contain unique characters", ErrInvalidAlphabet)
		}
		seen[alphabet[i]] = struct{}{}
	}
	return nil
}

// shuffle permutes b in place. The permutation is a pure function of the byte
// sequence itself: a single backward sweep where each swap target is derived
// from the pass indices and the bytes currently at them. Deterministic, so
// Decode can replay the exact progression Encode walked through.
func shuffle(b []byte) {
	for i, j := 0, len(b)-1; j > 0; i, j = i+1, j-1 {
		r := (i*j + int(b[i]) + int(b[j])) % len(b)
		b[i], b[r] = b[r], b[i]
	}
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// lowerFold maps a word to its lower-cased form, requiring the fold to be
// byte-length preserving. Folds that grow or shrink the word (certain
// multi-byte letters) make it unusable against a single-byte alphabet.
func lowerFold(word string) (string, error) {
	folded := strings.ToLower(word)
	if len(folded) != len(word) {
		return "", fmt.Errorf("%w: %q cannot be case-folded byte-for-byte", ErrInvalidBlocklistEntry, word)
	}
	return folded, nil
}
