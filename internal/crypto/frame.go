package crypto

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Frame is the decoded plaintext structure of a callback payload.
type Frame struct {
	// Nonce is the 16-byte random prefix. The protocol carries it for
	// replay resistance; this package retains it for diagnostics only.
	Nonce []byte
	// Message is the payload text.
	Message string
	// ReceiverID is the trailing identifier naming the tenant the payload
	// was encrypted for (corp or app ID). Decoded lossily; informational.
	ReceiverID string
}

// ParseFrame splits an unpadded plaintext into its nonce, message and
// trailing receiver ID. The message must be valid UTF-8; the receiver ID is
// decoded with lossy substitution and never fails the parse.
func ParseFrame(plaintext []byte) (*Frame, error) {
	if len(plaintext) < MinFrameSize {
		return nil, fmt.Errorf("%w: got %d bytes, want at least %d", ErrPlaintextTooShort, len(plaintext), MinFrameSize)
	}

	msgLen := binary.BigEndian.Uint32(plaintext[NonceSize:MinFrameSize])
	if uint64(msgLen) > uint64(len(plaintext)-MinFrameSize) {
		return nil, &LengthFieldError{MessageLength: msgLen, FrameLength: len(plaintext)}
	}
	end := MinFrameSize + int(msgLen)

	message := plaintext[MinFrameSize:end]
	if !utf8.Valid(message) {
		return nil, fmt.Errorf("%w: %d-byte message segment at offset %d", ErrMessageEncoding, len(message), MinFrameSize)
	}

	nonce := make([]byte, NonceSize)
	copy(nonce, plaintext)

	return &Frame{
		Nonce:      nonce,
		Message:    string(message),
		ReceiverID: strings.ToValidUTF8(string(plaintext[end:]), string(utf8.RuneError)),
	}, nil
}

// BuildFrame assembles the plaintext layout nonce | length | message |
// receiver ID. The result is unpadded; apply Pad before encrypting.
func BuildFrame(nonce []byte, message, receiverID string) []byte {
	frame := make([]byte, 0, NonceSize+LengthFieldSize+len(message)+len(receiverID))
	frame = append(frame, nonce...)
	frame = binary.BigEndian.AppendUint32(frame, uint32(len(message)))
	frame = append(frame, message...)
	frame = append(frame, receiverID...)
	return frame
}
