package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "badger get study-app-state: Key not found",
			expected: "badger get study-app-state: Key not found",
		},
		{
			name:     "state file path",
			input:    "file set study-app-state: open /home/ana/.studyctl/study-app-state.json.tmp123: no space left on device",
			expected: "file set study-app-state: open [REDACTED_PATH]: no space left on device",
		},
		{
			name:     "windows path",
			input:    `open C:\Users\ana\state\blob.json: access denied`,
			expected: "open [REDACTED_PATH]: access denied",
		},
		{
			name:     "sql statement",
			input:    "sqlite set k: INSERT INTO kv (key, value) VALUES (?, ?); database or disk is full",
			expected: "sqlite set k: [REDACTED_SQL]; database or disk is full",
		},
		{
			name:     "api key from env",
			input:    "loading .env: GEMINI_API_KEY=abc123xyz rejected",
			expected: "loading .env: GEMINI_[REDACTED_CREDENTIAL] rejected",
		},
		{
			name:     "password parameter",
			input:    "config password=hunter22 ok",
			expected: "config [REDACTED_CREDENTIAL] ok",
		},
		{
			name:     "email",
			input:    "contact ana.lopez@example.com",
			expected: "contact [REDACTED_EMAIL]",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, redact.Error(nil))

	err := fmt.Errorf("persist state: %w", errors.New("rename /tmp/state/blob.tmp /tmp/state/blob.json: permission denied"))
	assert.Equal(t, "persist state: rename [REDACTED_PATH] [REDACTED_PATH]: permission denied", redact.Error(err))
}
