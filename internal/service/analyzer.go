package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/strength"
)

// AnalyzerService handles strength analysis business logic. Analysis is a
// pure computation, so the service carries no state.
type AnalyzerService struct{}

// NewAnalyzerService creates a new AnalyzerService.
func NewAnalyzerService() *AnalyzerService {
	return &AnalyzerService{}
}

// Analyze produces a strength report for the given request. It never fails:
// an empty password yields the neutral zero report.
func (s *AnalyzerService) Analyze(req model.AnalyzeRequest) model.AnalyzeResponse {
	if req.Extended {
		return extendedToResponse(strength.AnalyzeExtended(req.Password))
	}
	return reportToResponse(strength.Analyze(req.Password))
}

// reportToResponse converts a strength.Report to its API representation.
func reportToResponse(r strength.Report) model.AnalyzeResponse {
	return model.AnalyzeResponse{
		Length:           r.Length,
		HasUppercase:     r.HasUppercase,
		HasLowercase:     r.HasLowercase,
		HasNumbers:       r.HasNumbers,
		HasSymbols:       r.HasSymbols,
		HasRepeatedChar:  r.HasRepeatedChar,
		HasSequentialRun: r.HasSequentialRun,
		EntropyBits:      r.EntropyBits,
		Score:            r.Score,
		Level:            string(r.Level),
		Suggestions:      r.Suggestions,
	}
}

// extendedToResponse converts a strength.ExtendedReport to its API
// representation, including pattern flags and recommendations.
func extendedToResponse(ext strength.ExtendedReport) model.AnalyzeResponse {
	resp := reportToResponse(ext.Report)

	resp.Patterns = &model.PatternFlags{
		Keyboard:          ext.Patterns.Keyboard,
		Dictionary:        ext.Patterns.Dictionary,
		PersonalInfo:      ext.Patterns.PersonalInfo,
		RepeatedSubstring: ext.Patterns.RepeatedSubstring,
		Common:            ext.Patterns.Common,
		Leaked:            ext.Patterns.Leaked,
	}

	for _, rec := range ext.Recommendations {
		resp.Recommendations = append(resp.Recommendations, model.Recommendation{
			Severity: string(rec.Severity),
			Message:  rec.Message,
		})
	}

	return resp
}
