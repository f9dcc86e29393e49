package utils

import "github.com/microcosm-cc/bluemonday"

// Sanitizer neutralizes user-supplied markup so stored text can later be
// embedded as HTML content without anything executing.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize strips every tag and attribute and encodes what remains. Running
// it on its own output changes nothing, and newlines survive untouched.
func (s *Sanitizer) Sanitize(raw string) string {
	return s.policy.Sanitize(raw)
}
