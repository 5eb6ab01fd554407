package utils

import (
	"github.com/matthewhartstonge/argon2"
)

const MinPasswordLength = 6

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func VerifyPassword(encodedHash, password string) (bool, error) {
	if encodedHash == "" {
		return false, nil
	}
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
