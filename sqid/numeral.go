package sqid

import (
	"bytes"
	"fmt"
)

// toID converts num to base-len(alphabet) digits, most significant first.
// Zero encodes as the single zero-digit symbol.
func toID(num uint64, alphabet []byte) []byte {
	k := uint64(len(alphabet))
	var id []byte
	for {
		id = append(id, alphabet[num%k])
		num /= k
		if num == 0 {
			break
		}
	}
	reverse(id)
	return id
}

// toNumber is the exact inverse of toID over the same alphabet slice.
func toNumber(id string, alphabet []byte) (uint64, error) {
	k := uint64(len(alphabet))
	var num uint64
	for i := 0; i < len(id); i++ {
		idx := bytes.IndexByte(alphabet, id[i])
		if idx < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, id[i])
		}
		num = num*k + uint64(idx)
	}
	return num, nil
}
