package wecomkit

import (
	"errors"
	"fmt"

	"github.com/wecomkit/callback-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeyEncoding is returned when the key material does not
	// decode as base64, or its length can never be valid base64.
	ErrInvalidKeyEncoding = errors.New("invalid key material encoding")

	// ErrInvalidKeyLength is returned when the decoded key material is not
	// exactly 32 bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidCiphertextEncoding is returned when the ciphertext does not
	// decode as base64 after space repair.
	ErrInvalidCiphertextEncoding = errors.New("invalid ciphertext encoding")

	// ErrBlockAlignment is returned when the decoded ciphertext length is
	// zero or not a multiple of the AES block size.
	ErrBlockAlignment = errors.New("ciphertext not block aligned")

	// ErrCipher is returned when the decryption primitive rejects the
	// key/IV/ciphertext combination.
	ErrCipher = errors.New("cipher rejected key material")

	// ErrPlaintextTooShort is returned when the unpadded plaintext cannot
	// hold the nonce and length field.
	ErrPlaintextTooShort = errors.New("plaintext too short")

	// ErrLengthFieldOutOfRange is returned when the embedded message length
	// points past the end of the plaintext.
	ErrLengthFieldOutOfRange = errors.New("message length field out of range")

	// ErrMessageEncoding is returned when the message segment is not valid
	// UTF-8.
	ErrMessageEncoding = errors.New("message is not valid UTF-8")

	// ErrInvalidPadding is returned in strict padding mode when the padding
	// bytes are malformed.
	ErrInvalidPadding = errors.New("invalid padding")
)

// Stage identifies the pipeline stage that produced a failure or report.
type Stage string

const (
	// StageNormalizeKey covers key material normalization and decoding.
	StageNormalizeKey Stage = "normalize key"
	// StagePrepareCiphertext covers ciphertext repair, decoding and the
	// block alignment check.
	StagePrepareCiphertext Stage = "prepare ciphertext"
	// StageDecrypt covers AES-CBC decryption and padding removal.
	StageDecrypt Stage = "decrypt"
	// StageEncrypt covers frame padding and AES-CBC encryption.
	StageEncrypt Stage = "encrypt"
	// StageParse covers plaintext frame parsing.
	StageParse Stage = "parse"
)

// StageError is the error type returned by Decrypt and Encrypt. It names the
// pipeline stage that failed and wraps the underlying diagnostic, which
// carries the expected and actual values.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for the package sentinels.
func (e *StageError) Is(target error) bool {
	switch target {
	case ErrInvalidKeyEncoding:
		return errors.Is(e.Err, crypto.ErrKeyEncoding)
	case ErrInvalidKeyLength:
		return errors.Is(e.Err, crypto.ErrKeyLength)
	case ErrInvalidCiphertextEncoding:
		return errors.Is(e.Err, crypto.ErrCiphertextEncoding)
	case ErrBlockAlignment:
		return errors.Is(e.Err, crypto.ErrBlockAlignment)
	case ErrCipher:
		return errors.Is(e.Err, crypto.ErrCipher)
	case ErrPlaintextTooShort:
		return errors.Is(e.Err, crypto.ErrPlaintextTooShort)
	case ErrLengthFieldOutOfRange:
		return errors.Is(e.Err, ErrLengthFieldOutOfRange)
	case ErrMessageEncoding:
		return errors.Is(e.Err, crypto.ErrMessageEncoding)
	case ErrInvalidPadding:
		return errors.Is(e.Err, crypto.ErrPadding)
	}
	return false
}

// LengthFieldError reports a message length field that points past the end
// of the plaintext. MessageLength is the value read from the frame;
// PlaintextLength is the actual unpadded plaintext length.
type LengthFieldError struct {
	MessageLength   uint32
	PlaintextLength int
}

func (e *LengthFieldError) Error() string {
	return fmt.Sprintf("message length %d exceeds plaintext length %d", e.MessageLength, e.PlaintextLength)
}

// Is implements errors.Is for sentinel error matching.
func (e *LengthFieldError) Is(target error) bool {
	return target == ErrLengthFieldOutOfRange
}

// wrapStage converts internal pipeline errors to the public error surface.
// Structured internal errors are rewrapped as their public counterparts so
// errors.As works without reaching into internal packages.
func wrapStage(stage Stage, err error) error {
	if err == nil {
		return nil
	}

	var lengthErr *crypto.LengthFieldError
	if errors.As(err, &lengthErr) {
		err = &LengthFieldError{
			MessageLength:   lengthErr.MessageLength,
			PlaintextLength: lengthErr.FrameLength,
		}
	}

	return &StageError{Stage: stage, Err: err}
}
