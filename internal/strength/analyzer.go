// Package strength scores passwords against a deterministic heuristic model.
// Everything in here is a pure function of the input string: no state, no
// I/O, safe to call concurrently.
package strength

import (
	"math"
	"strings"
)

// Level is the ordinal strength label derived from the numeric score.
type Level string

const (
	LevelVeryWeak  Level = "very_weak"
	LevelWeak      Level = "weak"
	LevelFair      Level = "fair"
	LevelGood      Level = "good"
	LevelStrong    Level = "strong"
	LevelExcellent Level = "excellent"
)

// referenceSequences are the runs checked by sequential-run detection. Any
// 3-character window of the password (or its reverse) that appears in one of
// these counts as a sequential run.
var referenceSequences = []string{
	"0123456789",
	"abcdefghijklmnopqrstuvwxyz",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// Report is the result of analyzing a single password. The zero value is the
// explicit "no report" state returned for empty input: no score, no level,
// no suggestions.
type Report struct {
	Length           int
	HasUppercase     bool
	HasLowercase     bool
	HasNumbers       bool
	HasSymbols       bool
	HasRepeatedChar  bool
	HasSequentialRun bool
	EntropyBits      float64
	Score            int
	Level            Level
	Suggestions      []string
}

// Analyze computes a strength report for the given password. It never fails:
// an empty password yields the zero Report. Calling it twice on the same
// input yields identical reports.
func Analyze(password string) Report {
	if password == "" {
		return Report{}
	}

	r := Report{Length: len(password)}

	seen := make(map[rune]int)
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			r.HasUppercase = true
		case c >= 'a' && c <= 'z':
			r.HasLowercase = true
		case c >= '0' && c <= '9':
			r.HasNumbers = true
		default:
			// Symbols are anything not alphanumeric.
			r.HasSymbols = true
		}
		seen[c]++
		if seen[c] > 1 {
			r.HasRepeatedChar = true
		}
	}

	r.HasSequentialRun = hasSequentialRun(password)
	r.EntropyBits = entropyBits(r)
	r.Score = score(r)
	r.Level = levelFor(r.Score)
	r.Suggestions = suggestions(r)

	return r
}

// hasSequentialRun reports whether any 3-character window of the password,
// read forward or backward and case-insensitively, occurs in one of the
// reference sequences.
func hasSequentialRun(password string) bool {
	lower := strings.ToLower(password)
	for i := 0; i+3 <= len(lower); i++ {
		window := lower[i : i+3]
		reversed := string([]byte{window[2], window[1], window[0]})
		for _, seq := range referenceSequences {
			if strings.Contains(seq, window) || strings.Contains(seq, reversed) {
				return true
			}
		}
	}
	return false
}

// entropyBits is the heuristic length * log2(nominal alphabet size), where
// the alphabet sums fixed class sizes (26 lower, 26 upper, 10 digits, 32
// symbols) for the classes present. This approximates guessing space, not
// the Shannon entropy of the specific string.
func entropyBits(r Report) float64 {
	alphabet := 0
	if r.HasLowercase {
		alphabet += 26
	}
	if r.HasUppercase {
		alphabet += 26
	}
	if r.HasNumbers {
		alphabet += 10
	}
	if r.HasSymbols {
		alphabet += 32
	}
	if alphabet == 0 {
		return 0
	}
	return float64(r.Length) * math.Log2(float64(alphabet))
}

func score(r Report) int {
	s := 0

	if r.Length >= 8 {
		s += 25
	}
	if r.Length >= 12 {
		s += 15
	}
	if r.Length >= 16 {
		s += 10
	}

	if r.HasUppercase {
		s += 10
	}
	if r.HasLowercase {
		s += 10
	}
	if r.HasNumbers {
		s += 10
	}
	if r.HasSymbols {
		s += 15
	}

	if r.EntropyBits > 40 {
		s += 10
	}
	if r.EntropyBits > 60 {
		s += 5
	}

	if r.HasRepeatedChar {
		s -= 10
	}
	if r.HasSequentialRun {
		s -= 15
	}
	if r.Length < 8 {
		s -= 20
	}

	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return s
}

func levelFor(score int) Level {
	switch {
	case score >= 90:
		return LevelExcellent
	case score >= 75:
		return LevelStrong
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	case score >= 20:
		return LevelWeak
	default:
		return LevelVeryWeak
	}
}

// suggestions emits improvement hints in a fixed order: length first, then
// missing classes in class order, then repetition and sequences.
func suggestions(r Report) []string {
	var out []string

	if r.Length < 8 {
		out = append(out, "Use at least 8 characters")
	}
	if r.Length < 12 {
		out = append(out, "Use 12 or more characters for a stronger password")
	}
	if !r.HasUppercase {
		out = append(out, "Add uppercase letters")
	}
	if !r.HasLowercase {
		out = append(out, "Add lowercase letters")
	}
	if !r.HasNumbers {
		out = append(out, "Add numbers")
	}
	if !r.HasSymbols {
		out = append(out, "Add symbols")
	}
	if r.HasRepeatedChar {
		out = append(out, "Avoid repeated characters")
	}
	if r.HasSequentialRun {
		out = append(out, "Avoid sequential characters")
	}

	return out
}
