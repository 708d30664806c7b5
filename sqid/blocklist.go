package sqid

import "strings"

// filterBlocklist derives the effective blocklist from raw candidate words:
// words shorter than three bytes are dropped, words are case-folded, and
// words using symbols outside the (case-folded) alphabet are dropped.
// Duplicates collapse; first occurrence wins.
func filterBlocklist(words []string, alphabet string) ([]string, error) {
	lowered, err := lowerFold(alphabet)
	if err != nil {
		return nil, err
	}

	symbols := make(map[byte]struct{}, len(lowered))
	for i := 0; i < len(lowered); i++ {
		symbols[lowered[i]] = struct{}{}
	}

	var filtered []string
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if len(word) < 3 {
			continue
		}
		folded, err := lowerFold(word)
		if err != nil {
			return nil, err
		}
		if !usesOnly(folded, symbols) {
			continue
		}
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		filtered = append(filtered, folded)
	}
	return filtered, nil
}

func usesOnly(word string, symbols map[byte]struct{}) bool {
	for i := 0; i < len(word); i++ {
		if _, ok := symbols[word[i]]; !ok {
			return false
		}
	}
	return true
}

// isBlockedID reports whether a candidate identifier matches the effective
// blocklist. The rule is graduated to avoid over-blocking short identifiers:
// candidates of up to three bytes block only on an exact match, digit-only
// words block as a prefix or suffix, and any other word blocks anywhere as a
// contiguous substring.
func (s *Sqids) isBlockedID(id string) bool {
	id = strings.ToLower(id)
	for _, word := range s.blocklist {
		if len(word) > len(id) {
			continue
		}
		switch {
		case len(id) <= 3:
			if word == id {
				return true
			}
		case digitsOnly(word):
			if strings.HasPrefix(id, word) || strings.HasSuffix(id, word) {
				return true
			}
		case strings.Contains(id, word):
			return true
		}
	}
	return false
}

func digitsOnly(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < '0' || word[i] > '9' {
			return false
		}
	}
	return true
}
