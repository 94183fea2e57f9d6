package strength

import (
	"regexp"
	"strings"
)

// Severity classifies a recommendation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// lowEntropyThreshold is the bits value below which an informational
// low-entropy recommendation is emitted.
const lowEntropyThreshold = 50

// keyboardRows are physical keyboard runs checked as substrings.
var keyboardRows = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"1234567890",
}

// dictionaryWords is a small fixed list of common words that show up inside
// weak passwords. Substring match, case-insensitive.
var dictionaryWords = []string{
	"password", "welcome", "monkey", "dragon", "master", "shadow",
	"sunshine", "princess", "football", "baseball", "superman", "batman",
	"trustno", "freedom", "whatever", "computer", "internet", "secret",
	"summer", "winter",
}

// commonPasswords is a small fixed list of known weak passwords. Substring
// match, case-insensitive.
var commonPasswords = []string{
	"password", "123456", "12345678", "123456789", "qwerty", "abc123",
	"letmein", "welcome", "admin", "iloveyou", "monkey", "dragon",
	"111111", "123123", "654321", "qwerty123", "password1",
}

// personalInfoPatterns approximate dates and years that people embed in
// passwords.
var personalInfoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(19|20)\d{2}`),                              // year
	regexp.MustCompile(`\d{1,2}[-/.]\d{1,2}[-/.]\d{2,4}`),           // separated date
	regexp.MustCompile(`(0[1-9]|[12]\d|3[01])(0[1-9]|1[0-2])\d{2}`), // compact DDMMYY
}

// leakedPatterns approximate formats that dominate breach corpora.
var leakedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)password\d+`),
	regexp.MustCompile(`^\d{4,8}$`),
	regexp.MustCompile(`^[a-zA-Z]{1,6}$`),
}

// IsKeyboardPattern reports whether any 3-character window of a keyboard row
// appears in the password, case-insensitively.
func IsKeyboardPattern(password string) bool {
	lower := strings.ToLower(password)
	for _, row := range keyboardRows {
		for i := 0; i+3 <= len(row); i++ {
			if strings.Contains(lower, row[i:i+3]) {
				return true
			}
		}
	}
	return false
}

// IsDictionaryWord reports whether the password contains a common word.
func IsDictionaryWord(password string) bool {
	lower := strings.ToLower(password)
	for _, w := range dictionaryWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// MightBePersonalInfo reports whether the password matches a date-like or
// year-like pattern.
func MightBePersonalInfo(password string) bool {
	for _, re := range personalInfoPatterns {
		if re.MatchString(password) {
			return true
		}
	}
	return false
}

// HasRepeatedSubstring reports whether some block of length >= 2 occurs more
// than once in the password. Cubic in the worst case, which is fine at
// password lengths.
func HasRepeatedSubstring(password string) bool {
	n := len(password)
	for l := 2; l <= n/2; l++ {
		for i := 0; i+l <= n; i++ {
			if strings.Contains(password[i+l:], password[i:i+l]) {
				return true
			}
		}
	}
	return false
}

// IsCommonPassword reports whether the password contains a known weak
// password, case-insensitively.
func IsCommonPassword(password string) bool {
	lower := strings.ToLower(password)
	for _, w := range commonPasswords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// MatchesLeakedPattern reports whether the password matches a common weak
// format such as "password1" or a bare digit string.
func MatchesLeakedPattern(password string) bool {
	for _, re := range leakedPatterns {
		if re.MatchString(password) {
			return true
		}
	}
	return false
}

// PatternFlags collects the individual pattern detections.
type PatternFlags struct {
	Keyboard          bool
	Dictionary        bool
	PersonalInfo      bool
	RepeatedSubstring bool
	Common            bool
	Leaked            bool
}

// Recommendation is a tagged improvement hint produced by extended analysis.
type Recommendation struct {
	Severity Severity
	Message  string
}

// ExtendedReport combines the base strength report with pattern detections
// and their recommendations.
type ExtendedReport struct {
	Report
	Patterns        PatternFlags
	Recommendations []Recommendation
}

// AnalyzeExtended runs the base analysis plus pattern detection. Like
// Analyze, it never fails and returns the zero report for empty input.
// Recommendations are emitted in fixed order: common, leaked, keyboard,
// dictionary, personal info, repeated substring, low entropy.
func AnalyzeExtended(password string) ExtendedReport {
	if password == "" {
		return ExtendedReport{}
	}

	ext := ExtendedReport{
		Report: Analyze(password),
		Patterns: PatternFlags{
			Keyboard:          IsKeyboardPattern(password),
			Dictionary:        IsDictionaryWord(password),
			PersonalInfo:      MightBePersonalInfo(password),
			RepeatedSubstring: HasRepeatedSubstring(password),
			Common:            IsCommonPassword(password),
			Leaked:            MatchesLeakedPattern(password),
		},
	}

	if ext.Patterns.Common {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityCritical,
			Message:  "This is a well-known password; replace it entirely",
		})
	}
	if ext.Patterns.Leaked {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityCritical,
			Message:  "This matches a format common in breached password lists",
		})
	}
	if ext.Patterns.Keyboard {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityWarning,
			Message:  "Avoid keyboard patterns like qwerty or asdf",
		})
	}
	if ext.Patterns.Dictionary {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityWarning,
			Message:  "Avoid dictionary words",
		})
	}
	if ext.Patterns.PersonalInfo {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityWarning,
			Message:  "Avoid dates and years that could be guessed from personal info",
		})
	}
	if ext.Patterns.RepeatedSubstring {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityInfo,
			Message:  "Avoid repeating blocks of characters",
		})
	}
	if ext.EntropyBits < lowEntropyThreshold {
		ext.Recommendations = append(ext.Recommendations, Recommendation{
			Severity: SeverityInfo,
			Message:  "Increase length or character variety to raise entropy",
		})
	}

	return ext
}
