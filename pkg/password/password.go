// Package password encapsula bcrypt para que los casos de uso no dependan del algoritmo.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hash devuelve el digest bcrypt de plain con el costo por defecto.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password vacío")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare informa si plain corresponde al digest.
func Compare(plain, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
