package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	plain := []byte("POSTGRES_PASSWORD=dbsecret\nN8N_BASIC_AUTH_PASSWORD=appsecret\n")

	var encrypted bytes.Buffer
	require.NoError(t, Encrypt(bytes.NewReader(plain), &encrypted, []byte("passphrase")))

	var decrypted bytes.Buffer
	require.NoError(t, Decrypt(bytes.NewReader(encrypted.Bytes()), &decrypted, []byte("passphrase")))

	assert.Equal(t, plain, decrypted.Bytes())
}

func TestDecryptRejectsWrongPassphrase(t *testing.T) {
	var encrypted bytes.Buffer
	require.NoError(t, Encrypt(bytes.NewReader([]byte("secret")), &encrypted, []byte("right")))

	var decrypted bytes.Buffer
	err := Decrypt(bytes.NewReader(encrypted.Bytes()), &decrypted, []byte("wrong"))

	assert.Equal(t, ErrInvalidHMAC, err)
}

func TestDecryptRejectsTruncatedArchive(t *testing.T) {
	var decrypted bytes.Buffer
	err := Decrypt(bytes.NewReader([]byte{0x1, 0x2, 0x3}), &decrypted, []byte("passphrase"))

	assert.Error(t, err)
}
