package crypto

const (
	// AESKeySize is the size of the AES-256 key decoded from the key material.
	AESKeySize = 32

	// IVSize is the size of the CBC initialization vector. The IV is the
	// first IVSize bytes of the derived key.
	IVSize = 16

	// BlockSize is the AES cipher block size. Ciphertext length must be a
	// positive multiple of this.
	BlockSize = 16

	// PadBlockSize is the padding boundary used by the originating platform.
	// WeCom pads plaintext frames to a 32-byte boundary, so pad values up to
	// 32 occur in genuine payloads even though the cipher block size is 16.
	PadBlockSize = 32

	// EncodedKeyLength is the canonical length of an EncodingAESKey before
	// base64 padding restoration.
	EncodedKeyLength = 43

	// NonceSize is the size of the random prefix embedded in a plaintext frame.
	NonceSize = 16

	// LengthFieldSize is the size of the big-endian message length field.
	LengthFieldSize = 4

	// MinFrameSize is the minimum size of an unpadded plaintext frame:
	// the nonce plus the length field.
	MinFrameSize = NonceSize + LengthFieldSize
)
