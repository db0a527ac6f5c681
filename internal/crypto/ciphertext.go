package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// RepairBase64 replaces every literal space in s with '+'. Upstream URL
// decoding turns '+' into a space; a base64 string never legitimately
// contains one, so the repair is applied whenever a space is present.
func RepairBase64(s string) string {
	if !strings.Contains(s, " ") {
		return s
	}
	return strings.ReplaceAll(s, " ", "+")
}

// PrepareCiphertext repairs and decodes a base64 ciphertext string and
// checks AES block alignment. The alignment check runs before any cipher
// work so misaligned input never reaches the primitive.
func PrepareCiphertext(raw string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(RepairBase64(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCiphertextEncoding, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want a positive multiple of %d", ErrBlockAlignment, len(ciphertext), BlockSize)
	}
	return ciphertext, nil
}
