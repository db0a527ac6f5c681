package wecomkit

import (
	"fmt"

	"github.com/wecomkit/callback-go/internal/crypto"
)

// Message is the decrypted content of a callback payload.
type Message struct {
	// Nonce is the 16-byte random prefix embedded in the plaintext. The
	// protocol carries it for replay resistance; it is retained here for
	// diagnostics only and not otherwise validated.
	Nonce []byte
	// Content is the decrypted message text.
	Content string
	// ReceiverID is the trailing identifier naming the tenant the payload
	// was encrypted for (the corp or app ID). Informational; invalid UTF-8
	// in this segment is replaced rather than failing the decrypt.
	ReceiverID string
}

// Decrypt runs the callback decryption pipeline over a key-material string
// (EncodingAESKey) and a base64 ciphertext. The stages run strictly in
// order — key normalization, ciphertext preparation, AES-256-CBC decryption
// with padding removal, frame parsing — and the first failure short-circuits
// the rest. Failures are *StageError values matching the package sentinels.
//
// Decrypt is pure and safe for concurrent use.
func Decrypt(keyMaterial, ciphertext string, opts ...Option) (*Message, error) {
	cfg := newPipelineConfig(opts)

	key, err := crypto.NormalizeKey(keyMaterial)
	if err != nil {
		return nil, wrapStage(StageNormalizeKey, err)
	}
	cfg.report(StageNormalizeKey, "derived %d-byte AES key, IV = first %d bytes", len(key), crypto.IVSize)

	raw, err := crypto.PrepareCiphertext(ciphertext)
	if err != nil {
		return nil, wrapStage(StagePrepareCiphertext, err)
	}
	cfg.report(StagePrepareCiphertext, "decoded %d ciphertext bytes (%d blocks)", len(raw), len(raw)/crypto.BlockSize)

	padded, err := crypto.DecryptCBC(key, raw)
	if err != nil {
		return nil, wrapStage(StageDecrypt, err)
	}

	var plaintext []byte
	if cfg.strictPadding {
		plaintext, err = crypto.UnpadStrict(padded)
		if err != nil {
			return nil, wrapStage(StageDecrypt, err)
		}
	} else {
		plaintext = crypto.Unpad(padded)
	}
	if len(plaintext) < crypto.MinFrameSize {
		return nil, wrapStage(StageDecrypt, fmt.Errorf("%w: got %d bytes after unpadding, want at least %d",
			crypto.ErrPlaintextTooShort, len(plaintext), crypto.MinFrameSize))
	}
	cfg.report(StageDecrypt, "removed %d padding bytes, %d plaintext bytes remain", len(padded)-len(plaintext), len(plaintext))

	frame, err := crypto.ParseFrame(plaintext)
	if err != nil {
		return nil, wrapStage(StageParse, err)
	}
	cfg.report(StageParse, "nonce %x, %d-byte message, receiver %q", frame.Nonce, len(frame.Message), frame.ReceiverID)

	return &Message{
		Nonce:      frame.Nonce,
		Content:    frame.Message,
		ReceiverID: frame.ReceiverID,
	}, nil
}
