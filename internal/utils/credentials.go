package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
)

const (
	mayusculas = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	minusculas = "abcdefghijklmnopqrstuvwxyz"
	digitos    = "0123456789"
)

// LongitudContrasena is the minimum length of a generated temporary password
const LongitudContrasena = 9

// randInt returns a uniform random int in [0, max)
func randInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random source: %w", err)
	}
	return int(n.Int64()), nil
}

// GenerarContrasena builds a temporary password of the given length with at
// least one uppercase letter, one lowercase letter and one digit. The result
// is shuffled with a Fisher-Yates permutation so the guaranteed characters
// do not always sit at the front.
func GenerarContrasena(longitud int) (string, error) {
	if longitud < LongitudContrasena {
		longitud = LongitudContrasena
	}

	todos := mayusculas + minusculas + digitos
	chars := make([]byte, 0, longitud)

	for _, alfabeto := range []string{mayusculas, minusculas, digitos} {
		i, err := randInt(len(alfabeto))
		if err != nil {
			return "", err
		}
		chars = append(chars, alfabeto[i])
	}

	for len(chars) < longitud {
		i, err := randInt(len(todos))
		if err != nil {
			return "", err
		}
		chars = append(chars, todos[i])
	}

	for i := len(chars) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

// GenerarCodigo draws a uniform random integer in [min, max] and returns it
// as a decimal string, for use as a manual check-in code
func GenerarCodigo(min, max int) (string, error) {
	n, err := randInt(max - min + 1)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(min + n), nil
}
