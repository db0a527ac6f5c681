package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// NormalizeKey decodes an EncodingAESKey string into the 32-byte AES key.
// The first IVSize bytes of the result double as the CBC IV.
//
// Key material is normalized before decoding so that the canonical 43
// character unpadded form, an already-padded form, and a form with stray
// surrounding whitespace all produce the same key: surrounding whitespace is
// trimmed, trailing '=' characters are stripped, and base64 padding is
// restored from the remaining length.
func NormalizeKey(keyMaterial string) ([]byte, error) {
	s := strings.TrimSpace(keyMaterial)
	s = strings.TrimRight(s, "=")

	switch len(s) % 4 {
	case 0:
		// already a full base64 group
	case 2:
		s += "=="
	case 3:
		s += "="
	default:
		// remainder 1 is never a valid base64 length
		return nil, fmt.Errorf("%w: length %d is not a valid base64 length (canonical form is %d characters)",
			ErrKeyEncoding, len(s), EncodedKeyLength)
	}

	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyEncoding, err)
	}
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrKeyLength, len(key), AESKeySize)
	}

	return key, nil
}
