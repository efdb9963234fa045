package cryptox

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	// одинаковые входы -> одинаковый вывод
	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	if len(key1) != argonKeyLen {
		t.Errorf("expected %d byte key, got %d", argonKeyLen, len(key1))
	}
}

func TestHashPassword_KeyMatchesDeriveKey(t *testing.T) {
	h, err := HashPassword("secret-password")
	require.NoError(t, err)

	parts := strings.Split(h, "$")
	require.Len(t, parts, 6)
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	require.NoError(t, err)
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	require.NoError(t, err)

	assert.Len(t, salt, saltLen)
	assert.Equal(t, DeriveKey([]byte("secret-password"), salt), key)
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	if bytes.Equal(DeriveKey(password, []byte("salt-1")), DeriveKey(password, []byte("salt-2"))) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashPassword_Format(t *testing.T) {
	h, err := HashPassword("Abc123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(h, "$argon2id$v=19$m=65536,t=1,p=4$"), h)
	assert.Len(t, strings.Split(h, "$"), 6)
	assert.NotContains(t, h, "Abc123")
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("Abc123")
	require.NoError(t, err)
	h2, err := HashPassword("Abc123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerifyPassword(t *testing.T) {
	h, err := HashPassword("Xyz789")
	require.NoError(t, err)

	ok, err := VerifyPassword("Xyz789", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("xyz789", h)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, CheckHash(h))
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"Abc123",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=4$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=0$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$!!!$a2V5",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$",
	} {
		_, err := VerifyPassword("Abc123", bad)
		assert.ErrorIs(t, err, ErrInvalidHash, bad)
		assert.ErrorIs(t, CheckHash(bad), ErrInvalidHash, bad)
	}
}
