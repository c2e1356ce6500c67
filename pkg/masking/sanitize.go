package masking

import (
	"regexp"
)

// Log sanitization differs from LLM masking: operators still need to
// correlate sends with conversations, so phone numbers keep their last four
// digits instead of collapsing to an opaque tag.
var (
	sanitizePhone = regexp.MustCompile(`\+?\d{8,15}`)
	sanitizeEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	sanitizeCPF   = regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{3}-\d{2}\b`)
	sanitizeCNPJ  = regexp.MustCompile(`\b\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}\b`)
	sanitizeBR    = regexp.MustCompile(`\(\d{2}\)\s?9?\d{4}[\s.-]?\d{4}`)
)

// SanitizeForLog scrubs a string for log emission: emails, CPF, CNPJ and
// Brazilian-format phones are replaced; bare phone numbers keep the last
// four digits.
func SanitizeForLog(text string) string {
	if text == "" {
		return text
	}
	out := sanitizeCPF.ReplaceAllString(text, "[CPF]")
	out = sanitizeCNPJ.ReplaceAllString(out, "[CNPJ]")
	out = sanitizeEmail.ReplaceAllString(out, "[EMAIL]")
	out = sanitizeBR.ReplaceAllString(out, "[PHONE]")
	out = sanitizePhone.ReplaceAllStringFunc(out, func(m string) string {
		if len(m) <= 4 {
			return m
		}
		return "***" + m[len(m)-4:]
	})
	return out
}

// SanitizePayload walks a decoded JSON payload and sanitizes every nested
// string value, returning a copy safe for logging. Non-string leaves are
// kept as-is.
func SanitizePayload(payload any) any {
	switch v := payload.(type) {
	case string:
		return SanitizeForLog(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = SanitizePayload(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = SanitizePayload(val)
		}
		return out
	default:
		return v
	}
}
