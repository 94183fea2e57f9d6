package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// similarChars are easily-confused lookalikes stripped by ExcludeSimilar.
	similarChars = "0Oo1lI"
	// ambiguousChars are stripped from the symbol class by ExcludeAmbiguous.
	ambiguousChars = "{}[]()/\\\"'`~,;.<>"

	MinLength = 1
	MaxLength = 128
)

var (
	ErrLengthInvalid      = errors.New("password length must be at least 1")
	ErrLengthTooLong      = errors.New("password length must be at most 128")
	ErrNoCharacterTypes   = errors.New("at least one character type must be selected")
	ErrEmptyFilteredClass = errors.New("character type has no characters left after exclusions")
)

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Numbers          bool
	Symbols          bool
	ExcludeSimilar   bool
	ExcludeAmbiguous bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types
// enabled and no exclusion filtering.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// characterClass is a named candidate set after exclusion filtering.
type characterClass struct {
	name  string
	chars string
}

// selectedClasses returns the filtered character classes for the enabled
// types, in fixed order. A class emptied by filtering is an error: silently
// skipping it would drop the at-least-one-per-class guarantee.
func selectedClasses(opts GeneratorOptions) ([]characterClass, error) {
	type class struct {
		name      string
		chars     string
		enabled   bool
		ambiguous bool
	}

	all := []class{
		{name: "uppercase", chars: uppercaseChars, enabled: opts.Uppercase},
		{name: "lowercase", chars: lowercaseChars, enabled: opts.Lowercase},
		{name: "numbers", chars: numberChars, enabled: opts.Numbers},
		{name: "symbols", chars: symbolChars, enabled: opts.Symbols, ambiguous: true},
	}

	var selected []characterClass
	for _, c := range all {
		if !c.enabled {
			continue
		}
		chars := c.chars
		if opts.ExcludeSimilar {
			chars = stripChars(chars, similarChars)
		}
		if opts.ExcludeAmbiguous && c.ambiguous {
			chars = stripChars(chars, ambiguousChars)
		}
		if chars == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFilteredClass, c.name)
		}
		selected = append(selected, characterClass{name: c.name, chars: chars})
	}

	if len(selected) == 0 {
		return nil, ErrNoCharacterTypes
	}

	return selected, nil
}

// Generate creates a cryptographically secure random password based on the
// given options. The result always contains at least one character from each
// selected class, except when Length is smaller than the number of selected
// classes: then only the first Length guaranteed characters are kept so the
// output is never longer than requested.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthInvalid
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	classes, err := selectedClasses(opts)
	if err != nil {
		return "", err
	}

	// Concatenate without de-duplicating: a character present in two classes
	// carries proportionally higher sampling weight, which is the inherited
	// behavior and kept on purpose.
	var pool strings.Builder
	for _, c := range classes {
		pool.WriteString(c.chars)
	}
	poolChars := pool.String()

	result := make([]byte, 0, opts.Length)

	// Guarantee one character from each selected class, truncated to Length
	// when there are more classes than positions.
	for i := 0; i < len(classes) && i < opts.Length; i++ {
		ch, err := randChar(classes[i].chars)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Fill the remaining positions from the full pool.
	for len(result) < opts.Length {
		ch, err := randChar(poolChars)
		if err != nil {
			return "", err
		}
		result = append(result, ch)
	}

	// Shuffle so the guaranteed characters are not predictably positioned.
	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using the secure source.
func randChar(charset string) (byte, error) {
	n, err := RandomIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// secureShuffle performs a Fisher-Yates shuffle driven by RandomIndex.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := RandomIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// stripChars returns s with every character present in cutset removed.
func stripChars(s, cutset string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(cutset, s[i]) < 0 {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
