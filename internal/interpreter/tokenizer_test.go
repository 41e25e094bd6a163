package interpreter_test

import (
	"testing"

	"taskcli/internal/interpreter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"single word", "list", []string{"list"}},
		{"collapses whitespace", "  list   done  ", []string{"list", "done"}},
		{"quoted", `add "buy milk"`, []string{"add", "buy milk"}},
		{"quoted keeps inner spacing", `add "  two  spaces "`, []string{"add", "  two  spaces "}},
		{"empty quotes", `add ""`, []string{"add", ""}},
		{"quote inside word", `add ab"c d"e`, []string{"add", "abc de"}},
		{"adjacent quoted", `update id "new text" extra`, []string{"update", "id", "new text", "extra"}},
		{"unquoted multi word", "add buy milk", []string{"add", "buy", "milk"}},
		{"tabs", "mark-done\tabc", []string{"mark-done", "abc"}},
		{"unicode", `add "купить молоко"`, []string{"add", "купить молоко"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := interpreter.Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenize_UnterminatedQuote(t *testing.T) {
	for _, line := range []string{`add "buy milk`, `"`, `update x "a" "b`} {
		_, err := interpreter.Tokenize(line)
		assert.ErrorIs(t, err, interpreter.ErrUnterminatedQuote, line)
	}
}
