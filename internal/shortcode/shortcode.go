// Package shortcode derives redirect codes from bookmark ids.
//
// Codes are sqids encodings of the row id, so two rows never share a code
// unless the alphabet changes between deployments. A non-zero attempt encodes
// [id, attempt] instead, which gives the store a fresh candidate when a code
// is already taken.
package shortcode

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/sqids/sqids-go"
)

const (
	// DefaultMinLength is the shortest code produced.
	DefaultMinLength = 6

	// MaxLength bounds codes accepted by Validate.
	MaxLength = 32

	// MaxAttempts is how many candidates the store tries for one row.
	MaxAttempts = 5

	// DefaultAlphabet is the sqids default alphabet, shuffled once so codes
	// don't read as sequential.
	DefaultAlphabet = "Fn7bKXW1hxqTAeSGr3tsPBRc5wV6yOgHvjoMNzIClEaJpmf29LDZku4QiU8Y0d"
)

var (
	// ErrInvalidCode is returned when a code is not 1-32 ASCII alphanumerics.
	ErrInvalidCode = errors.New("short code must be 1-32 alphanumeric characters")

	// ErrReservedCode is returned when a code collides with an application route.
	ErrReservedCode = errors.New("short code is reserved")

	// ErrExhausted is returned when every candidate for a row is reserved.
	ErrExhausted = errors.New("no usable short code candidate")

	codePattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)

	// reservedCodes shadow top-level routes and must never be issued.
	reservedCodes = map[string]bool{
		"api":     true,
		"docs":    true,
		"healthz": true,
		"metrics": true,
		"swagger": true,
	}
)

// Generator encodes ids into short codes.
type Generator struct {
	sq *sqids.Sqids
}

// New returns a Generator. An empty alphabet selects DefaultAlphabet; a
// custom one must be ASCII alphanumeric so generated codes pass Validate.
func New(alphabet string, minLength int) (*Generator, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if !codePattern.MatchString(alphabet) {
		return nil, fmt.Errorf("shortcode alphabet must be alphanumeric")
	}
	if minLength < 1 || minLength > MaxLength {
		return nil, fmt.Errorf("shortcode min length must be between 1 and %d, got %d", MaxLength, minLength)
	}
	sq, err := sqids.New(sqids.Options{
		Alphabet:  alphabet,
		MinLength: uint8(minLength),
	})
	if err != nil {
		return nil, fmt.Errorf("init sqids: %w", err)
	}
	return &Generator{sq: sq}, nil
}

// Generate returns the candidate code for id at the given attempt. Reserved
// candidates are skipped by moving on to the next attempt.
func (g *Generator) Generate(id int64, attempt int) (string, error) {
	if id < 0 || attempt < 0 {
		return "", fmt.Errorf("shortcode: negative input (id=%d, attempt=%d)", id, attempt)
	}
	for a := attempt; a < attempt+MaxAttempts; a++ {
		nums := []uint64{uint64(id)}
		if a > 0 {
			nums = append(nums, uint64(a))
		}
		code, err := g.sq.Encode(nums)
		if err != nil {
			return "", err
		}
		if !reservedCodes[code] {
			return code, nil
		}
	}
	return "", ErrExhausted
}

// Validate checks that code could have been issued. It does not check that a
// bookmark with this code exists.
func Validate(code string) error {
	if code == "" || len(code) > MaxLength || !codePattern.MatchString(code) {
		return ErrInvalidCode
	}
	if reservedCodes[code] {
		return fmt.Errorf("%w: %q", ErrReservedCode, code)
	}
	return nil
}
