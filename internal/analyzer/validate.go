package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Task description length bounds, measured on the trimmed value.
const (
	TaskMinLength = 3
	TaskMaxLength = 500
)

// ValidateTask trims the raw task description and checks its length.
// Trimming happens before measuring, so whitespace padding never helps
// a too-short task pass. Returns the trimmed value on success.
func ValidateTask(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)

	length := utf8.RuneCountInString(trimmed)
	if length < TaskMinLength {
		return "", ErrTaskTooShort
	}
	if length > TaskMaxLength {
		return "", ErrTaskTooLong
	}

	return trimmed, nil
}
