package model

// AnalyzeRequest represents a strength analysis request. Extended adds
// pattern detection and tagged recommendations to the response.
type AnalyzeRequest struct {
	Password string `json:"password"`
	Extended bool   `json:"extended"`
}

// AnalyzeResponse represents a strength report. For an empty password the
// report is the neutral zero state: score 0, no level, no suggestions.
type AnalyzeResponse struct {
	Length           int              `json:"length"`
	HasUppercase     bool             `json:"has_uppercase"`
	HasLowercase     bool             `json:"has_lowercase"`
	HasNumbers       bool             `json:"has_numbers"`
	HasSymbols       bool             `json:"has_symbols"`
	HasRepeatedChar  bool             `json:"has_repeated_char"`
	HasSequentialRun bool             `json:"has_sequential_run"`
	EntropyBits      float64          `json:"entropy_bits"`
	Score            int              `json:"score"`
	Level            string           `json:"level,omitempty"`
	Suggestions      []string         `json:"suggestions,omitempty"`
	Patterns         *PatternFlags    `json:"patterns,omitempty"`
	Recommendations  []Recommendation `json:"recommendations,omitempty"`
}

// PatternFlags reports the individual pattern detections of an extended
// analysis.
type PatternFlags struct {
	Keyboard          bool `json:"keyboard"`
	Dictionary        bool `json:"dictionary"`
	PersonalInfo      bool `json:"personal_info"`
	RepeatedSubstring bool `json:"repeated_substring"`
	Common            bool `json:"common"`
	Leaked            bool `json:"leaked"`
}

// Recommendation is a tagged improvement hint from extended analysis.
type Recommendation struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}
