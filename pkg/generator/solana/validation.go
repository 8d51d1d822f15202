package solana

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Base58 alphabet (Bitcoin/Solana style - excludes 0, O, I, l)
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// MaxAddressLen is the longest Base58 encoding of a 32-byte public key.
const MaxAddressLen = 44

// ErrEmptyPrefix is returned for a zero-length prefix.
var ErrEmptyPrefix = errors.New("empty prefix")

// InvalidBase58Error reports characters outside the Base58 alphabet.
type InvalidBase58Error struct {
	Prefix string
	Chars  []rune
}

func (e *InvalidBase58Error) Error() string {
	return fmt.Sprintf("invalid Base58 character(s) %q in prefix %q (not allowed: 0, O, I, l)", string(e.Chars), e.Prefix)
}

// PrefixTooLongError reports a prefix no Solana address can start with.
type PrefixTooLongError struct {
	Prefix string
}

func (e *PrefixTooLongError) Error() string {
	return fmt.Sprintf("prefix %q is longer than %d characters", e.Prefix, MaxAddressLen)
}

// IsValidBase58 checks if a string contains only valid Base58 characters.
// Base58 excludes: 0 (zero), O (uppercase o), I (uppercase i), l (lowercase L)
func IsValidBase58(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			return false
		}
	}
	return true
}

// InvalidBase58Chars returns any invalid Base58 characters in the input.
// Useful for providing helpful error messages to users.
func InvalidBase58Chars(s string) []rune {
	var invalid []rune
	for _, c := range s {
		if !strings.ContainsRune(base58Alphabet, c) {
			invalid = append(invalid, c)
		}
	}
	return invalid
}

// ValidatePrefix checks that prefix could appear at the start of an address.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return ErrEmptyPrefix
	}
	if !IsValidBase58(prefix) {
		return &InvalidBase58Error{Prefix: prefix, Chars: InvalidBase58Chars(prefix)}
	}
	if len(prefix) > MaxAddressLen {
		return &PrefixTooLongError{Prefix: prefix}
	}
	return nil
}

// ValidatePrefixes validates every prefix and requires at least one.
func ValidatePrefixes(prefixes []string) error {
	if len(prefixes) == 0 {
		return errors.New("at least one prefix is required")
	}
	var errs []error
	for _, p := range prefixes {
		if err := ValidatePrefix(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// EstimateAttempts returns the expected number of keys to generate before one
// of prefixes matches, treating each Base58 character as uniformly distributed.
func EstimateAttempts(prefixes []string) float64 {
	var p float64
	for _, prefix := range prefixes {
		p += math.Pow(58, -float64(len(prefix)))
	}
	if p == 0 {
		return math.Inf(1)
	}
	return 1 / p
}
