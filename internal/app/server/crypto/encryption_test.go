package crypto

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		keyHex  string
		wantErr bool
	}{
		{name: "valid 32-byte key", keyHex: testKeyHex, wantErr: false},
		{name: "empty key", keyHex: "", wantErr: true},
		{name: "not hex", keyHex: "zz", wantErr: true},
		{name: "too short", keyHex: "0001020304", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.keyHex)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoKey)
				assert.Nil(t, c)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, c)
			}
		})
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	c, err := New(testKeyHex)
	require.NoError(t, err)

	plaintexts := []string{
		"Sup3r$ecret",
		"",
		"пароль с юникодом",
		strings.Repeat("x", 4096),
	}

	for _, pt := range plaintexts {
		ct, err := c.Encrypt(pt)
		require.NoError(t, err)
		assert.NotEqual(t, pt, ct)

		got, err := c.Decrypt(ct)
		require.NoError(t, err)
		assert.Equal(t, pt, got)
	}
}

func TestCipher_EncryptNotDeterministic(t *testing.T) {
	c, err := New(testKeyHex)
	require.NoError(t, err)

	first, err := c.Encrypt("same input")
	require.NoError(t, err)
	second, err := c.Encrypt("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipher_DecryptWrongKey(t *testing.T) {
	c1, err := New(testKeyHex)
	require.NoError(t, err)

	otherKey := hex.EncodeToString([]byte(strings.Repeat("k", 32)))
	c2, err := New(otherKey)
	require.NoError(t, err)

	ct, err := c1.Encrypt("secret")
	require.NoError(t, err)

	_, err = c2.Decrypt(ct)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestCipher_DecryptCorrupted(t *testing.T) {
	c, err := New(testKeyHex)
	require.NoError(t, err)

	tests := []struct {
		name       string
		ciphertext string
	}{
		{name: "not hex", ciphertext: "not-hex-at-all"},
		{name: "too short", ciphertext: "00ff"},
		{name: "tampered", ciphertext: func() string {
			ct, _ := c.Encrypt("secret")
			raw, _ := hex.DecodeString(ct)
			raw[len(raw)-1] ^= 0xff
			return hex.EncodeToString(raw)
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.ciphertext)
			assert.ErrorIs(t, err, ErrDecrypt)
		})
	}
}
