// Package crypto implements the cryptographic pipeline for WeCom encrypted
// callback payloads.
//
// The protocol derives both the AES-256 key and the CBC initialization
// vector from a single base64-encoded key-material string (the
// EncodingAESKey): the decoded 32 bytes are the key, and the first 16 of
// those bytes double as the IV. Ciphertexts are standard base64, AES-256-CBC,
// with PKCS7 padding applied by the platform on a 32-byte boundary.
//
// Decrypted plaintext carries a fixed frame layout:
//
//	16 bytes  random nonce
//	 4 bytes  message length, unsigned big-endian
//	 N bytes  message (UTF-8)
//	 M bytes  trailing receiver ID (corp/app ID)
//
// Each pipeline stage fails fast with a sentinel error carrying the expected
// and actual values, so callers can render a precise diagnostic without
// re-running with added instrumentation.
package crypto
