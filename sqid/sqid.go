// Package sqid implements a reversible codec between sequences of
// non-negative integers and short, URL-safe identifiers. Identifiers are an
// obfuscating encoding, not encryption: they carry no secret, but they are
// non-sequential, profanity-filtered, and decode back to the exact numbers
// they were built from without a lookup table.
package sqid

import (
	"bytes"
	"fmt"
	"strings"
)

// defaultAlphabet is the symbol set used when Options.Alphabet is empty.
const defaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// minAlphabetLength is the smallest alphabet the codec accepts.
const minAlphabetLength = 3

// Options configures a codec instance. The zero value selects the default
// 62-symbol alphabet, no minimum length, and the default blocklist.
type Options struct {
	// Alphabet is the ordered set of symbols identifiers are built from.
	// Symbols must be distinct single-byte characters; at least three.
	Alphabet string

	// MinLength pads identifiers up to this length. Zero disables padding.
	MinLength int

	// Blocklist is the raw set of words identifiers must not match. A nil
	// slice selects DefaultBlocklist; an empty non-nil slice disables
	// blocking entirely.
	Blocklist []string
}

// Sqids is an immutable codec instance. It is safe for concurrent use: no
// Encode or Decode call mutates it.
type Sqids struct {
	alphabet  []byte
	minLength int
	blocklist []string
}

// New validates the options and builds a codec instance. The alphabet is
// shuffled once here so the stored order is decorrelated from the configured
// order; the blocklist is filtered down to words the alphabet can express.
func New(options ...Options) (*Sqids, error) {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}
	if opts.Alphabet == "" {
		opts.Alphabet = defaultAlphabet
	}
	if opts.Blocklist == nil {
		opts.Blocklist = DefaultBlocklist()
	}

	if err := validateAlphabet(opts.Alphabet); err != nil {
		return nil, err
	}
	if opts.MinLength < 0 {
		return nil, fmt.Errorf("%w: minimum length cannot be negative", ErrInvalidMinLength)
	}

	blocklist, err := filterBlocklist(opts.Blocklist, opts.Alphabet)
	if err != nil {
		return nil, err
	}

	alphabet := []byte(opts.Alphabet)
	shuffle(alphabet)

	return &Sqids{
		alphabet:  alphabet,
		minLength: opts.MinLength,
		blocklist: blocklist,
	}, nil
}

// Encode converts a sequence of non-negative integers into an identifier.
// An empty sequence encodes to the empty string. Order is significant:
// permuting the input produces a different identifier, and Decode restores
// the original order. Encode fails with ErrMaxAttempts when every identifier
// reachable within len(alphabet)+1 retries is blocklisted.
func (s *Sqids) Encode(numbers []uint64) (string, error) {
	if len(numbers) == 0 {
		return "", nil
	}
	return s.encodeNumbers(numbers, 0)
}

func (s *Sqids) encodeNumbers(numbers []uint64, increment int) (string, error) {
	n := len(s.alphabet)
	if increment > n {
		return "", ErrMaxAttempts
	}

	// The offset ties the rotation to the content and order of the input.
	// Retries perturb it by the increment, deterministically.
	offset := len(numbers)
	for i, num := range numbers {
		offset += i + int(s.alphabet[num%uint64(n)])
	}
	offset %= n
	offset = (offset + increment) % n

	alphabet := rotate(s.alphabet, offset)
	prefix := alphabet[0]
	reverse(alphabet)

	ret := []byte{prefix}
	for i, num := range numbers {
		// The head byte is reserved as this step's separator, so the
		// numeral is written with the remainder of the alphabet.
		ret = append(ret, toID(num, alphabet[1:])...)
		if i < len(numbers)-1 {
			ret = append(ret, alphabet[0])
			shuffle(alphabet)
		}
	}

	if s.minLength > len(ret) {
		ret = append(ret, alphabet[0])
		for s.minLength > len(ret) {
			shuffle(alphabet)
			take := s.minLength - len(ret)
			if take > n {
				take = n
			}
			ret = append(ret, alphabet[:take]...)
		}
	}

	id := string(ret)
	if s.isBlockedID(id) {
		return s.encodeNumbers(numbers, increment+1)
	}
	return id, nil
}

// Decode converts an identifier back into the sequence of numbers it was
// encoded from. The empty identifier decodes to an empty sequence, matching
// Encode of an empty sequence. Any byte outside the alphabet fails with
// ErrInvalidIdentifier; no partial result is returned.
func (s *Sqids) Decode(id string) ([]uint64, error) {
	ret := []uint64{}
	if id == "" {
		return ret, nil
	}

	for i := 0; i < len(id); i++ {
		if bytes.IndexByte(s.alphabet, id[i]) < 0 {
			return nil, fmt.Errorf("%w: symbol %q is not in the alphabet", ErrInvalidIdentifier, id[i])
		}
	}

	// The prefix byte's position in the shuffled alphabet recovers the
	// offset Encode rotated by, so the whole alphabet progression replays.
	offset := bytes.IndexByte(s.alphabet, id[0])
	alphabet := rotate(s.alphabet, offset)
	reverse(alphabet)

	rest := id[1:]
	for len(rest) > 0 {
		separator := string(alphabet[0])

		chunk, tail, found := strings.Cut(rest, separator)
		if chunk == "" {
			// Separator in first position marks the start of padding.
			return ret, nil
		}

		num, err := toNumber(chunk, alphabet[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
		}
		ret = append(ret, num)

		if !found {
			break
		}
		shuffle(alphabet)
		rest = tail
	}
	return ret, nil
}

// MinLength reports the configured minimum identifier length.
func (s *Sqids) MinLength() int {
	return s.minLength
}

// rotate returns a new slice holding b rotated left by offset positions.
func rotate(b []byte, offset int) []byte {
	out := make([]byte, len(b))
	copy(out, b[offset:])
	copy(out[len(b)-offset:], b[:offset])
	return out
}
