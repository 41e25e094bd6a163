package interpreter

import (
	"errors"
	"strings"
	"unicode"
)

var ErrUnterminatedQuote = errors.New("unterminated quote")

// Tokenize делит строку по пробелам; "..." - один токен без кавычек.
// Вложенных кавычек и экранирования нет.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		inToken bool
		quoted  bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inToken = true
		case unicode.IsSpace(r) && !quoted:
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quoted {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
