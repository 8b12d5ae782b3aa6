package recaptcha

import "context"

// Verifier checks an anti-automation token for a given client IP.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

// Result is the verification outcome. Score is nil for v2-style responses
// that carry no confidence value.
type Result struct {
	Success bool     `json:"success"`
	Score   *float64 `json:"score,omitempty"`
	Errors  []string `json:"error-codes,omitempty"`
}

// ScoreBelow reports whether the result carries a confidence score lower
// than the given threshold. Results without a score are never below.
func (r Result) ScoreBelow(threshold float64) bool {
	return r.Score != nil && *r.Score < threshold
}
