// Package wecomkit decrypts WeCom (企业微信) encrypted callback payloads.
//
// WeCom delivers callback verification and message payloads as a
// base64-encoded AES-256-CBC ciphertext alongside a base64-encoded
// key-material string (the EncodingAESKey, canonically 43 characters with
// the trailing '=' stripped). The decoded key material is the AES-256 key,
// and its first 16 bytes double as the CBC IV.
//
// Basic usage:
//
//	msg, err := wecomkit.Decrypt(encodingAESKey, msgEncrypt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(msg.Content, msg.ReceiverID)
//
// # Pipeline
//
// Decrypt composes four stages strictly in order and stops at the first
// failure: key normalization (whitespace trim, '=' strip, base64 re-pad,
// decode, 32-byte check), ciphertext preparation (space-to-'+' repair for a
// known upstream URL-decoding defect, base64 decode, block alignment check),
// AES-256-CBC decryption with padding removal, and frame parsing (16-byte
// nonce, big-endian length field, UTF-8 message, trailing receiver ID).
//
// Every failure is a [StageError] naming the stage that produced it, and
// matches one of the package sentinels under errors.Is. An out-of-range
// length field additionally exposes both the reported and actual lengths via
// [LengthFieldError] and errors.As.
//
// # Known looseness
//
// The originating platform removes PKCS7 padding by trusting the trailing
// pad byte without validating the bytes it removes. Decrypt replicates that
// by default for compatibility. [WithStrictPadding] opts into full
// validation (pad value 1..32, uniform padding bytes); the bound is 32
// because the platform pads frames to a 32-byte boundary.
//
// # Observability
//
// The pipeline performs no I/O and never logs. [WithReporter] injects a
// callback that receives per-stage progress reports (sizes, pad counts, the
// frame nonce — never key bytes), which is how the package exposes the
// step-by-step narration useful when diagnosing a failing callback.
//
// Signature verification and the webhook transport that carries the
// ciphertext are outside this package; callers are expected to have already
// extracted the two input strings.
package wecomkit
