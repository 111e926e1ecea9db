package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"

	"crypto-pulse/models"
)

// ParseError reports a completion response that is not the expected JSON
// object. It carries the raw model output for the visible failure surface.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sentiment: malformed completion response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseScores parses the provider's text output strictly as a JSON object
// mapping date strings to integer scores. Anything else yields *ParseError;
// there is no fallback score and no key-level salvage.
func ParseScores(text string) (models.AccountSentiment, error) {
	cleaned := cleanJSONResponse(text)

	var scores models.AccountSentiment
	if err := json.Unmarshal([]byte(cleaned), &scores); err != nil {
		return nil, &ParseError{Raw: text, Err: err}
	}
	return scores, nil
}

// cleanJSONResponse strips a surrounding markdown code fence, which some
// models emit even when told not to.
func cleanJSONResponse(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
