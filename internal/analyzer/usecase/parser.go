package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"smart-task-analyzer/internal/analyzer"
)

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseAnalysis extracts the JSON object from a raw model reply and
// validates it against the expected schema. The extraction is a hard
// validation gate, not a trust exercise: the model may wrap the object
// in markdown fences or prepend commentary despite instruction.
func ParseAnalysis(raw string) (analyzer.Analysis, error) {
	candidate, err := extractJSONObject(raw)
	if err != nil {
		return analyzer.Analysis{}, err
	}

	var obj struct {
		Category  string          `json:"category"`
		Priority  string          `json:"priority"`
		Reasoning string          `json:"reasoning"`
		DueDate   json.RawMessage `json:"due_date"`
	}
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return analyzer.Analysis{}, fmt.Errorf("failed to parse model JSON: %w", err)
	}

	category := analyzer.Category(obj.Category)
	if !category.IsValid() {
		return analyzer.Analysis{}, fmt.Errorf("%w: invalid category %q", analyzer.ErrInvalidSchema, obj.Category)
	}

	priority := analyzer.Priority(obj.Priority)
	if !priority.IsValid() {
		return analyzer.Analysis{}, fmt.Errorf("%w: invalid priority %q", analyzer.ErrInvalidSchema, obj.Priority)
	}

	if obj.Reasoning == "" {
		return analyzer.Analysis{}, fmt.Errorf("%w: reasoning must not be empty", analyzer.ErrInvalidSchema)
	}

	dueDate, err := parseDueDate(obj.DueDate)
	if err != nil {
		return analyzer.Analysis{}, err
	}

	return analyzer.Analysis{
		Category:  category,
		Priority:  priority,
		Reasoning: obj.Reasoning,
		DueDate:   dueDate,
	}, nil
}

// extractJSONObject takes the span from the first '{' through the last
// '}' as the JSON candidate. A heuristic on purpose: the upstream
// source is untrusted but cooperative, and strictness lives in the
// schema gate that follows.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", analyzer.ErrNoJSONFound
	}
	return raw[start : end+1], nil
}

// parseDueDate validates the due_date field: the key must be present
// and carry either null or a YYYY-MM-DD string.
func parseDueDate(raw json.RawMessage) (*string, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: due_date is required", analyzer.ErrInvalidSchema)
	}
	if string(raw) == "null" {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: due_date must be a string or null", analyzer.ErrInvalidSchema)
	}
	if !dueDatePattern.MatchString(s) {
		return nil, fmt.Errorf("%w: due_date %q is not in YYYY-MM-DD format", analyzer.ErrInvalidSchema, s)
	}
	return &s, nil
}
