package service

import (
	"testing"

	"github.com/passforge/passforge-go/internal/model"
)

func TestAnalyze_Basic(t *testing.T) {
	svc := NewAnalyzerService()
	resp := svc.Analyze(model.AnalyzeRequest{Password: "password"})

	if !resp.HasLowercase || resp.HasUppercase || resp.HasNumbers || resp.HasSymbols {
		t.Errorf("unexpected class flags: %+v", resp)
	}
	if resp.Level != "weak" {
		t.Errorf("level = %q, want %q", resp.Level, "weak")
	}
	if resp.Patterns != nil {
		t.Error("basic analysis should not include patterns")
	}
}

func TestAnalyze_Empty(t *testing.T) {
	svc := NewAnalyzerService()
	resp := svc.Analyze(model.AnalyzeRequest{Password: ""})

	if resp.Score != 0 || resp.Level != "" || len(resp.Suggestions) != 0 {
		t.Errorf("empty password should yield the neutral report, got %+v", resp)
	}
}

func TestAnalyze_Extended(t *testing.T) {
	svc := NewAnalyzerService()
	resp := svc.Analyze(model.AnalyzeRequest{Password: "password123", Extended: true})

	if resp.Patterns == nil {
		t.Fatal("extended analysis should include patterns")
	}
	if !resp.Patterns.Common {
		t.Error("expected common-password flag for \"password123\"")
	}
	if len(resp.Recommendations) == 0 {
		t.Error("expected recommendations for a weak password")
	}
	if resp.Recommendations[0].Severity != "critical" {
		t.Errorf("first recommendation severity = %q, want critical", resp.Recommendations[0].Severity)
	}
}
