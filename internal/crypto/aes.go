package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// DecryptCBC decrypts ciphertext with AES-256-CBC using the full 32-byte key
// and the first IVSize bytes of the key as the IV. The output still carries
// PKCS7 padding.
func DecryptCBC(key, ciphertext []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: key size %d, want %d", ErrCipher, len(key), AESKeySize)
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want a positive multiple of %d", ErrBlockAlignment, len(ciphertext), BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, key[:IVSize]).CryptBlocks(plaintext, ciphertext)
	return plaintext, nil
}

// EncryptCBC encrypts an already-padded plaintext with AES-256-CBC using the
// same key/IV derivation as DecryptCBC.
func EncryptCBC(key, plaintext []byte) ([]byte, error) {
	if len(key) != AESKeySize {
		return nil, fmt.Errorf("%w: key size %d, want %d", ErrCipher, len(key), AESKeySize)
	}
	if len(plaintext) == 0 || len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes, want a positive multiple of %d", ErrBlockAlignment, len(plaintext), BlockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}

	ciphertext := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, key[:IVSize]).CryptBlocks(ciphertext, plaintext)
	return ciphertext, nil
}

// Unpad removes PKCS7 padding by trusting the trailing length byte, without
// validating the removed bytes. This replicates the originating platform's
// behavior and must stay the default for compatibility; see UnpadStrict for
// the checked variant. A pad value of zero, or of or beyond the plaintext
// length, empties the buffer, which the caller's minimum-length check then
// rejects.
func Unpad(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	pad := int(data[len(data)-1])
	if pad == 0 || pad >= len(data) {
		return data[:0]
	}
	return data[:len(data)-pad]
}

// UnpadStrict removes PKCS7 padding and validates it: the pad value must be
// 1..PadBlockSize (the platform pads on a 32-byte boundary, so values above
// the 16-byte cipher block occur in genuine payloads) and every removed byte
// must equal the pad value.
func UnpadStrict(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrPadding)
	}
	pad := int(data[len(data)-1])
	if pad < 1 || pad > PadBlockSize {
		return nil, fmt.Errorf("%w: pad value %d outside 1..%d", ErrPadding, pad, PadBlockSize)
	}
	if pad > len(data) {
		return nil, fmt.Errorf("%w: pad value %d exceeds plaintext length %d", ErrPadding, pad, len(data))
	}
	for i := len(data) - pad; i < len(data); i++ {
		if data[i] != byte(pad) {
			return nil, fmt.Errorf("%w: non-uniform padding byte at offset %d", ErrPadding, i)
		}
	}
	return data[:len(data)-pad], nil
}

// Pad appends PKCS7 padding up to the platform's 32-byte boundary. A full
// block of padding is appended when the input is already aligned.
func Pad(data []byte) []byte {
	pad := PadBlockSize - len(data)%PadBlockSize
	padded := make([]byte, 0, len(data)+pad)
	padded = append(padded, data...)
	return append(padded, bytes.Repeat([]byte{byte(pad)}, pad)...)
}
