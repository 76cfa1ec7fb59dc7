package validation

import (
	"net/url"
	"strings"
)

// TargetValidator checks and normalizes redirect targets before they reach
// the store. A valid target is an absolute URL with both scheme and host.
type TargetValidator struct{}

func NewTargetValidator() *TargetValidator {
	return &TargetValidator{}
}

// NormalizeTargetURL parses rawURL and returns its canonical string form.
// Inputs without a scheme or host fail with ErrMalformedURL.
func (v *TargetValidator) NormalizeTargetURL(rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", ErrMalformedURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrMalformedURL
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", ErrMalformedURL
	}

	return parsed.String(), nil
}
