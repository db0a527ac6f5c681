package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestEncryptCBC_DecryptCBC_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"one block", 16},
		{"two blocks", 32},
		{"many blocks", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, AESKeySize)
			if _, err := rand.Read(key); err != nil {
				t.Fatal(err)
			}
			plaintext := make([]byte, tt.size)
			if _, err := rand.Read(plaintext); err != nil {
				t.Fatal(err)
			}

			ciphertext, err := EncryptCBC(key, plaintext)
			if err != nil {
				t.Fatalf("EncryptCBC() error = %v", err)
			}
			if len(ciphertext) != len(plaintext) {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext))
			}

			decrypted, err := DecryptCBC(key, ciphertext)
			if err != nil {
				t.Fatalf("DecryptCBC() error = %v", err)
			}
			if !bytes.Equal(decrypted, plaintext) {
				t.Errorf("decrypted = %x, want %x", decrypted, plaintext)
			}
		})
	}
}

func TestDecryptCBC_InvalidKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 24, 33} {
		_, err := DecryptCBC(make([]byte, size), make([]byte, BlockSize))
		if !errors.Is(err, ErrCipher) {
			t.Errorf("key size %d: expected ErrCipher, got %v", size, err)
		}
	}
}

func TestDecryptCBC_Misaligned(t *testing.T) {
	key := make([]byte, AESKeySize)
	for _, size := range []int{0, 1, 15, 17, 33} {
		_, err := DecryptCBC(key, make([]byte, size))
		if !errors.Is(err, ErrBlockAlignment) {
			t.Errorf("ciphertext size %d: expected ErrBlockAlignment, got %v", size, err)
		}
	}
}

func TestUnpad_TrustsTrailingByte(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			name: "uniform padding",
			in:   append([]byte("payload"), bytes.Repeat([]byte{9}, 9)...),
			want: []byte("payload"),
		},
		{
			// the removed bytes are deliberately not checked
			name: "non-uniform padding",
			in:   append([]byte("payload"), 1, 2, 3, 4),
			want: []byte("payload"),
		},
		{
			name: "pad of one",
			in:   append([]byte("payload"), 1),
			want: []byte("payload"),
		},
		{
			name: "pad equals length",
			in:   bytes.Repeat([]byte{4}, 4),
			want: []byte{},
		},
		{
			name: "pad exceeds length",
			in:   []byte{1, 2, 255},
			want: []byte{},
		},
		{
			name: "zero pad empties",
			in:   []byte{1, 2, 0},
			want: []byte{},
		},
		{
			name: "empty",
			in:   []byte{},
			want: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unpad(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Unpad(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnpadStrict(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		want    []byte
		wantErr bool
	}{
		{
			name: "valid pad of four",
			in:   append([]byte("data"), 4, 4, 4, 4),
			want: []byte("data"),
		},
		{
			name: "valid full 32-byte pad",
			in:   bytes.Repeat([]byte{32}, 32),
			want: []byte{},
		},
		{
			name:    "zero pad value",
			in:      []byte{1, 2, 0},
			wantErr: true,
		},
		{
			name:    "pad value above 32",
			in:      append(bytes.Repeat([]byte{0}, 32), 33),
			wantErr: true,
		},
		{
			name:    "pad exceeds length",
			in:      []byte{7, 7, 7},
			wantErr: true,
		},
		{
			name:    "non-uniform padding",
			in:      append([]byte("data"), 3, 4, 4),
			wantErr: true,
		},
		{
			name:    "empty",
			in:      []byte{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnpadStrict(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrPadding) {
					t.Errorf("expected ErrPadding, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UnpadStrict() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("UnpadStrict(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPad_RoundTrip(t *testing.T) {
	for _, size := range []int{0, 1, 19, 31, 32, 33, 63, 64} {
		data := bytes.Repeat([]byte{0xee}, size)
		padded := Pad(data)

		if len(padded)%PadBlockSize != 0 {
			t.Errorf("size %d: padded length %d not a multiple of %d", size, len(padded), PadBlockSize)
		}
		if len(padded) == len(data) {
			t.Errorf("size %d: aligned input must still gain a full pad block", size)
		}

		unpadded, err := UnpadStrict(padded)
		if err != nil {
			t.Fatalf("size %d: UnpadStrict() error = %v", size, err)
		}
		if !bytes.Equal(unpadded, data) {
			t.Errorf("size %d: round trip mismatch", size)
		}
	}
}

func BenchmarkDecryptCBC(b *testing.B) {
	key := make([]byte, AESKeySize)
	plaintext := make([]byte, 2048)
	rand.Read(key)
	rand.Read(plaintext)

	ciphertext, _ := EncryptCBC(key, plaintext)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DecryptCBC(key, ciphertext)
	}
}
