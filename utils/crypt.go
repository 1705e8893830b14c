package utils

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"io"

	"golang.org/x/crypto/scrypt"
)

// Stream format: version byte, IV, AES salt, HMAC salt, AES-CTR
// ciphertext, SHA-512 HMAC over everything after the version byte.
const (
	cryptVersion byte = 0x1
	ivSize            = 16
	saltSize          = 32
	hmacSize          = sha512.Size
)

// ErrInvalidHMAC is returned when a backup archive fails
// authentication, usually a wrong passphrase.
var ErrInvalidHMAC = errors.New("invalid HMAC: wrong passphrase or corrupted archive")

func deriveKey(passphrase, salt []byte) ([]byte, []byte, error) {
	if salt == nil {
		salt = make([]byte, saltSize)
		if _, err := rand.Read(salt); err != nil {
			return nil, nil, err
		}
	}

	key, err := scrypt.Key(passphrase, salt, 32768, 8, 1, 32)
	if err != nil {
		return nil, nil, err
	}

	return key, salt, nil
}

// Encrypt writes the encrypted form of in to out using the given
// passphrase.
func Encrypt(in io.Reader, out io.Writer, passphrase []byte) error {
	keyAes, saltAes, err := deriveKey(passphrase, nil)
	if err != nil {
		return err
	}
	keyHmac, saltHmac, err := deriveKey(passphrase, nil)
	if err != nil {
		return err
	}

	iv := make([]byte, ivSize)
	if _, err := rand.Read(iv); err != nil {
		return err
	}

	block, err := aes.NewCipher(keyAes)
	if err != nil {
		return err
	}
	ctr := cipher.NewCTR(block, iv)
	mac := hmac.New(sha512.New, keyHmac)

	if _, err := out.Write([]byte{cryptVersion}); err != nil {
		return err
	}

	w := io.MultiWriter(out, mac)
	for _, header := range [][]byte{iv, saltAes, saltHmac} {
		if _, err := w.Write(header); err != nil {
			return err
		}
	}

	buf := make([]byte, 16*1024)
	for {
		n, readErr := in.Read(buf)
		if n > 0 {
			enc := make([]byte, n)
			ctr.XORKeyStream(enc, buf[:n])
			if _, err := w.Write(enc); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	_, err = out.Write(mac.Sum(nil))
	return err
}

// Decrypt authenticates and decrypts a stream produced by Encrypt.
// The whole input is buffered: backup archives are small enough
// (generated config files plus one database dump).
func Decrypt(in io.Reader, out io.Writer, passphrase []byte) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	headerSize := 1 + ivSize + 2*saltSize
	if len(data) < headerSize+hmacSize {
		return errors.New("encrypted archive too short")
	}
	if data[0] != cryptVersion {
		return errors.New("unsupported archive version")
	}

	iv := data[1 : 1+ivSize]
	saltAes := data[1+ivSize : 1+ivSize+saltSize]
	saltHmac := data[1+ivSize+saltSize : headerSize]
	body := data[headerSize : len(data)-hmacSize]
	sum := data[len(data)-hmacSize:]

	keyAes, _, err := deriveKey(passphrase, saltAes)
	if err != nil {
		return err
	}
	keyHmac, _, err := deriveKey(passphrase, saltHmac)
	if err != nil {
		return err
	}

	mac := hmac.New(sha512.New, keyHmac)
	mac.Write(data[1 : len(data)-hmacSize])
	if !hmac.Equal(sum, mac.Sum(nil)) {
		return ErrInvalidHMAC
	}

	block, err := aes.NewCipher(keyAes)
	if err != nil {
		return err
	}
	plain := make([]byte, len(body))
	cipher.NewCTR(block, iv).XORKeyStream(plain, body)

	_, err = io.Copy(out, bytes.NewReader(plain))
	return err
}
