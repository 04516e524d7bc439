// Package passgen generates random passwords from configurable character
// classes using crypto/rand.
package passgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars = "0123456789"
	// symbolChars is ASCII punctuation without the backtick, so generated
	// passwords stay intact inside Markdown code spans.
	symbolChars = `!"#$%&'()*+,-./:;<=>?@[\]^_{|}~`
)

var (
	ErrLength    = errors.New("password length must be at least 1")
	ErrNoClasses = errors.New("at least one character class must be enabled")
)

// Options selects the password length and the character classes drawn from.
type Options struct {
	Length  int
	Lower   bool
	Upper   bool
	Digits  bool
	Symbols bool
}

// Generate builds a random password of opts.Length characters. Every enabled
// class contributes at least one character as long as Length allows, and the
// result never contains characters from a disabled class.
func Generate(opts Options) (string, error) {
	if opts.Length < 1 {
		return "", ErrLength
	}

	var pool string
	var classes []string
	if opts.Lower {
		pool += lowerChars
		classes = append(classes, lowerChars)
	}
	if opts.Upper {
		pool += upperChars
		classes = append(classes, upperChars)
	}
	if opts.Digits {
		pool += digitChars
		classes = append(classes, digitChars)
	}
	if opts.Symbols {
		pool += symbolChars
		classes = append(classes, symbolChars)
	}
	if len(classes) == 0 {
		return "", ErrNoClasses
	}

	// Seed one guaranteed character per enabled class, fill the rest with
	// uniform picks from the pool. Requests shorter than the class count
	// still seed every class and truncate after the shuffle, so no class
	// is favored by position.
	size := opts.Length
	if size < len(classes) {
		size = len(classes)
	}
	result := make([]byte, size)
	for i, alphabet := range classes {
		ch, err := randChar(alphabet)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	for i := len(classes); i < size; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := shuffle(result); err != nil {
		return "", err
	}
	return string(result[:opts.Length]), nil
}

// randChar picks one character from alphabet using crypto/rand.
func randChar(alphabet string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, fmt.Errorf("passgen: read random: %w", err)
	}
	return alphabet[n.Int64()], nil
}

// shuffle performs an unbiased Fisher-Yates shuffle using crypto/rand.
func shuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("passgen: read random: %w", err)
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
