package analyzer_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-analyzer/internal/analyzer"
)

func TestValidateTask(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"minimum length passes", "abc", "abc", nil},
		{"typical task passes", "Fix bug in authentication module - urgent", "Fix bug in authentication module - urgent", nil},
		{"surrounding whitespace is trimmed", "  buy milk  ", "buy milk", nil},
		{"trims before measuring", "  ab  ", "", analyzer.ErrTaskTooShort},
		{"too short", "ab", "", analyzer.ErrTaskTooShort},
		{"empty", "", "", analyzer.ErrTaskTooShort},
		{"whitespace only", "   \t\n  ", "", analyzer.ErrTaskTooShort},
		{"exactly 500 passes", strings.Repeat("a", 500), strings.Repeat("a", 500), nil},
		{"501 fails", strings.Repeat("a", 501), "", analyzer.ErrTaskTooLong},
		{"padded 500 passes", "  " + strings.Repeat("a", 500) + "  ", strings.Repeat("a", 500), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := analyzer.ValidateTask(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateTaskErrorMessages(t *testing.T) {
	// The constraint values are load-bearing for API compatibility.
	_, err := analyzer.ValidateTask("ab")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 characters")

	_, err = analyzer.ValidateTask(strings.Repeat("x", 501))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
