package wecomkit

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/wecomkit/callback-go/internal/crypto"
)

// Encrypt is the inverse of Decrypt: it assembles a plaintext frame from
// message and receiverID with a random 16-byte nonce, pads it to the
// platform's 32-byte boundary, encrypts it with AES-256-CBC under the key
// derived from keyMaterial, and returns the standard base64 ciphertext.
//
// Callers replying to callbacks are still responsible for the signature and
// envelope the platform expects around the ciphertext.
func Encrypt(keyMaterial, message, receiverID string) (string, error) {
	key, err := crypto.NormalizeKey(keyMaterial)
	if err != nil {
		return "", wrapStage(StageNormalizeKey, err)
	}

	nonce := make([]byte, crypto.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	frame := crypto.BuildFrame(nonce, message, receiverID)
	ciphertext, err := crypto.EncryptCBC(key, crypto.Pad(frame))
	if err != nil {
		return "", wrapStage(StageEncrypt, err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
