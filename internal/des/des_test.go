package des

import (
	"bytes"
	stddes "crypto/des"
	"encoding/binary"
	"encoding/hex"
	"testing"
)

func mustHex(t *testing.T, s string) [8]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 8 {
		t.Fatalf("bad test vector %q", s)
	}
	var out [8]byte
	copy(out[:], b)
	return out
}

// 公開されている既知のDESテストベクトルと一致することを確認する。
func TestEncryptBlock_KnownAnswers(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
	}{
		{"classic", "133457799bbcdff1", "0123456789abcdef", "85e813540f0ab405"},
		{"all zero", "0000000000000000", "0000000000000000", "8ca64de9c1b123a7"},
		{"all ones", "ffffffffffffffff", "ffffffffffffffff", "7359b2163e4edc58"},
		{"mixed", "0123456789abcdef", "1122334455667788", "b4cc3fd9d8d95214"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCipher(mustHex(t, tt.key))
			got := c.EncryptBlock(mustHex(t, tt.plaintext))
			want := mustHex(t, tt.ciphertext)
			if got != want {
				t.Errorf("want %x, got %x", want, got)
			}
		})
	}
}

// crypto/desと全ビット一致することを確認する。
// ハードウェア互換の要であるため、鍵と平文を変化させて突き合わせる。
func TestEncryptBlock_MatchesCryptoDES(t *testing.T) {
	for i := 0; i < 64; i++ {
		var key, plaintext [8]byte
		binary.BigEndian.PutUint64(key[:], 0x0101010101010101*uint64(i)+0x1f3a5c7e90b2d4f6)
		binary.BigEndian.PutUint64(plaintext[:], 0x0123456789abcdef^uint64(i)<<17)

		ref, err := stddes.NewCipher(key[:])
		if err != nil {
			t.Fatalf("crypto/des: %v", err)
		}
		want := make([]byte, 8)
		ref.Encrypt(want, plaintext[:])

		got := NewCipher(key).EncryptBlock(plaintext)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("key %x plaintext %x: want %x, got %x", key, plaintext, want, got)
		}
	}
}

func TestEncryptBlock_Deterministic(t *testing.T) {
	key := mustHex(t, "61646d696e61646d")
	plaintext := mustHex(t, "3031303132303233")

	first := NewCipher(key).EncryptBlock(plaintext)
	second := NewCipher(key).EncryptBlock(plaintext)
	if first != second {
		t.Errorf("same key and plaintext produced %x and %x", first, second)
	}
}
