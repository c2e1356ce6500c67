// Package masking substitutes personally identifiable substrings with fixed
// tags before any text leaves the process: LLM calls, provider payloads in
// logs, audit reasons. Patterns are compiled once at startup; the service is
// stateless afterwards and safe for concurrent use.
package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex with its replacement tag.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns are applied in order. CPF/CNPJ run before the phone
// patterns so a bare 11-digit CPF is not mistaken for a phone number.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{"cpf_formatted", `\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`, "[CPF]"},
	{"cnpj_formatted", `\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`, "[CNPJ]"},
	{"cnpj_bare", `\b\d{14}\b`, "[CNPJ]"},
	{"cpf_bare", `\b\d{11}\b`, "[CPF]"},
	{"email", `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, "[EMAIL]"},
	{"phone_e164", `\+\d{10,15}\b`, "[PHONE]"},
	{"phone_br", `\(?\b(?:55\s?)?(?:\d{2}\)?[\s.-]?)?9?\d{4}[\s.-]?\d{4}\b`, "[PHONE]"},
}

// Service applies PII masking. Create once at boot with NewService.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the built-in pattern set. Invalid patterns are logged
// and skipped rather than aborting boot.
func NewService() *Service {
	s := &Service{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			slog.Error("Failed to compile masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
		})
	}
	slog.Info("Masking service initialized", "patterns", len(s.patterns))
	return s
}

// Mask replaces every PII match in text with its tag.
func (s *Service) Mask(text string) string {
	if text == "" {
		return text
	}
	masked := text
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}

// MaskAll masks a slice of strings, returning a new slice.
func (s *Service) MaskAll(texts []string) []string {
	if len(texts) == 0 {
		return nil
	}
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = s.Mask(t)
	}
	return out
}
