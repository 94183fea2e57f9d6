package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "uppercase only",
			opts: GeneratorOptions{
				Length: 16, Uppercase: true,
			},
			wantErr: nil,
		},
		{
			name: "lowercase only",
			opts: GeneratorOptions{
				Length: 16, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "numbers only",
			opts: GeneratorOptions{
				Length: 16, Numbers: true,
			},
			wantErr: nil,
		},
		{
			name: "symbols only",
			opts: GeneratorOptions{
				Length: 16, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name: "minimum length",
			opts: GeneratorOptions{
				Length: MinLength, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "maximum length",
			opts: GeneratorOptions{
				Length: MaxLength, Uppercase: true, Lowercase: true,
			},
			wantErr: nil,
		},
		{
			name: "exclusion filtering enabled",
			opts: GeneratorOptions{
				Length: 20, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
				ExcludeSimilar: true, ExcludeAmbiguous: true,
			},
			wantErr: nil,
		},
		{
			name: "zero length",
			opts: GeneratorOptions{
				Length: 0, Uppercase: true,
			},
			wantErr: ErrLengthInvalid,
		},
		{
			name: "negative length",
			opts: GeneratorOptions{
				Length: -3, Lowercase: true,
			},
			wantErr: ErrLengthInvalid,
		},
		{
			name: "length too long",
			opts: GeneratorOptions{
				Length: 200, Uppercase: true,
			},
			wantErr: ErrLengthTooLong,
		},
		{
			name: "no character types selected",
			opts: GeneratorOptions{
				Length: 16,
			},
			wantErr: ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	opts := GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	// Run multiple times to reduce flakiness from randomness.
	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}

		if !strings.ContainsAny(password, uppercaseChars) {
			t.Errorf("password %q missing uppercase character", password)
		}
		if !strings.ContainsAny(password, lowercaseChars) {
			t.Errorf("password %q missing lowercase character", password)
		}
		if !strings.ContainsAny(password, numberChars) {
			t.Errorf("password %q missing number character", password)
		}
		if !strings.ContainsAny(password, symbolChars) {
			t.Errorf("password %q missing symbol character", password)
		}
	}
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 32, Uppercase: true},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 32, Lowercase: true},
			charset: lowercaseChars,
		},
		{
			name:    "numbers only",
			opts:    GeneratorOptions{Length: 32, Numbers: true},
			charset: numberChars,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true},
			charset: symbolChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateExcludeSimilar(t *testing.T) {
	opts := GeneratorOptions{
		Length:         64,
		Uppercase:      true,
		Lowercase:      true,
		Numbers:        true,
		ExcludeSimilar: true,
	}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, similarChars) {
			t.Errorf("password %q contains a similar-set character", password)
		}
	}
}

func TestGenerateExcludeAmbiguous(t *testing.T) {
	opts := GeneratorOptions{
		Length:           64,
		Symbols:          true,
		ExcludeAmbiguous: true,
	}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if strings.ContainsAny(password, ambiguousChars) {
			t.Errorf("password %q contains an ambiguous character", password)
		}
	}
}

func TestGenerateExcludeAmbiguousLeavesOtherClasses(t *testing.T) {
	// Ambiguous filtering applies to symbols only; digits and letters that
	// happen to appear in the ambiguous set elsewhere must be unaffected.
	opts := GeneratorOptions{
		Length:           32,
		Lowercase:        true,
		ExcludeAmbiguous: true,
	}

	password, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	for _, ch := range password {
		if !strings.ContainsRune(lowercaseChars, ch) {
			t.Errorf("unexpected character %q in lowercase-only password", string(ch))
		}
	}
}

func TestGenerateShorterThanSelectedClasses(t *testing.T) {
	// Four classes but only two positions: the guaranteed characters are
	// truncated and the result is exactly the requested length.
	opts := GeneratorOptions{
		Length:    2,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}

	for i := 0; i < 20; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 2 {
			t.Errorf("Generate() length = %d, want 2", len(password))
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestSelectedClassesFiltering(t *testing.T) {
	classes, err := selectedClasses(GeneratorOptions{
		Uppercase:      true,
		Numbers:        true,
		ExcludeSimilar: true,
	})
	if err != nil {
		t.Fatalf("selectedClasses() unexpected error: %v", err)
	}
	if len(classes) != 2 {
		t.Fatalf("selectedClasses() returned %d classes, want 2", len(classes))
	}
	if strings.ContainsAny(classes[0].chars, "OI") {
		t.Errorf("uppercase class %q still contains similar characters", classes[0].chars)
	}
	if strings.ContainsAny(classes[1].chars, "01") {
		t.Errorf("numbers class %q still contains similar characters", classes[1].chars)
	}
}
