package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// GenerateFunc is the signature of the core generation call. The service is
// constructed with one so instrumentation can be layered on explicitly at
// the call site instead of being patched into the generator.
type GenerateFunc func(crypto.GeneratorOptions) (string, error)

// WithTiming decorates a GenerateFunc with duration logging.
func WithTiming(logger *slog.Logger, fn GenerateFunc) GenerateFunc {
	return func(opts crypto.GeneratorOptions) (string, error) {
		start := time.Now()
		password, err := fn(opts)
		if err != nil {
			return "", err
		}
		logger.Debug("password generated", "length", opts.Length, "duration", time.Since(start))
		return password, nil
	}
}

// GeneratorService handles password generation business logic. History is
// optional: when present and the caller is authenticated, generated
// passwords are recorded.
type GeneratorService struct {
	generate GenerateFunc
	history  *HistoryService
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(generate GenerateFunc, history *HistoryService) *GeneratorService {
	if generate == nil {
		generate = crypto.Generate
	}
	return &GeneratorService{generate: generate, history: history}
}

// Generate produces a password based on the given request, along with an
// inline strength report. userID 0 means anonymous: nothing is recorded.
func (s *GeneratorService) Generate(ctx context.Context, userID int64, req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeSimilar:   req.ExcludeSimilar,
		ExcludeAmbiguous: req.ExcludeAmbiguous,
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultOptions().Length
	}

	password, err := s.generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	if s.history != nil && userID != 0 {
		if err := s.history.Record(ctx, userID, password); err != nil {
			// History is a convenience; a failed write must not lose the
			// generated password.
			slog.Warn("recording password history failed", "user_id", userID, "error", err)
		}
	}

	report := reportToResponse(strength.Analyze(password))

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: &report,
	}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
