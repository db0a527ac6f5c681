package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyEncoding is returned when the key material is not decodable
	// base64, including lengths that can never be valid base64.
	ErrKeyEncoding = errors.New("invalid key material encoding")

	// ErrKeyLength is returned when the decoded key material is not exactly
	// 32 bytes.
	ErrKeyLength = errors.New("invalid key length")

	// ErrCiphertextEncoding is returned when the ciphertext is not decodable
	// base64 after space repair.
	ErrCiphertextEncoding = errors.New("invalid ciphertext encoding")

	// ErrBlockAlignment is returned when the decoded ciphertext length is
	// zero or not a multiple of the AES block size.
	ErrBlockAlignment = errors.New("ciphertext not block aligned")

	// ErrCipher is returned when the cipher primitive rejects the key.
	ErrCipher = errors.New("cipher rejected key material")

	// ErrPlaintextTooShort is returned when the unpadded plaintext is too
	// short to hold the nonce and length field.
	ErrPlaintextTooShort = errors.New("plaintext too short")

	// ErrLengthField is returned when the embedded message length points
	// past the end of the plaintext.
	ErrLengthField = errors.New("message length field out of range")

	// ErrMessageEncoding is returned when the message segment is not valid
	// UTF-8.
	ErrMessageEncoding = errors.New("message is not valid UTF-8")

	// ErrPadding is returned by strict unpadding when the padding bytes are
	// malformed.
	ErrPadding = errors.New("invalid padding")
)

// LengthFieldError reports a message length field that points past the end
// of the plaintext frame. It carries both values so callers can show the
// exact mismatch.
type LengthFieldError struct {
	MessageLength uint32
	FrameLength   int
}

func (e *LengthFieldError) Error() string {
	return fmt.Sprintf("message length %d exceeds plaintext length %d", e.MessageLength, e.FrameLength)
}

// Is implements errors.Is for sentinel error matching.
func (e *LengthFieldError) Is(target error) bool {
	return target == ErrLengthField
}
