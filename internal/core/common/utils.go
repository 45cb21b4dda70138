package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSONObject = errors.New("no JSON object found in response")

// ParseJSON unmarshals the JSON object embedded in an LLM response into a T.
// Markdown code fences and any prose around the outermost {...} are ignored.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	jsonStr, err := ExtractObject(response)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return result, nil
}

// ExtractObject returns the text between the first '{' and the last '}'. A response whose
// JSON opens with '[' is an array, not an object, and is rejected.
func ExtractObject(response string) (string, error) {
	clean := stripFences(response)

	start := strings.IndexByte(clean, '{')
	end := strings.LastIndexByte(clean, '}')
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONObject
	}
	if strings.ContainsRune(clean[:start], '[') {
		return "", ErrNoJSONObject
	}
	return clean[start : end+1], nil
}

func stripFences(s string) string {
	clean := strings.TrimSpace(s)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")
	return strings.TrimSpace(clean)
}
