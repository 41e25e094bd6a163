package interpreter

import (
	"errors"
	"fmt"
	"taskcli/internal/logger"
	"taskcli/internal/middleware"
	"taskcli/internal/service"

	"go.uber.org/zap"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNoCommand
	KindUnknownCommand
	KindParse
	KindArgumentCount
	KindNotFound
	KindInvalidFilter
	KindValidation
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindNoCommand:
		return "NoCommand"
	case KindUnknownCommand:
		return "UnknownCommand"
	case KindParse:
		return "ParseError"
	case KindArgumentCount:
		return "ArgumentCountError"
	case KindNotFound:
		return "NotFound"
	case KindInvalidFilter:
		return "InvalidFilter"
	case KindValidation:
		return "ValidationError"
	case KindPersistence:
		return "PersistenceError"
	default:
		return "InternalError"
	}
}

// CommandError - ошибка, которую видит пользователь. Message печатается как есть.
type CommandError struct {
	Kind    Kind
	Message string
	Err     error
}

func (c *CommandError) Error() string {
	return c.Message
}

func (c *CommandError) Unwrap() error {
	return c.Err
}

func newCommandError(kind Kind, format string, args ...any) *CommandError {
	return &CommandError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf возвращает категорию ошибки команды; nil - KindInternal.
func KindOf(err error) Kind {
	return toCommandError(err).Kind
}

func toCommandError(err error) *CommandError {
	var commandErr *CommandError
	if errors.As(err, &commandErr) {
		return commandErr
	}

	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		kind := mapBusinessErrorToKind(businessErr.Code)

		logger.Warn("CLI: Бизнес-ошибка",
			zap.String("error_code", businessErr.Code),
			zap.Stringer("kind", kind))

		message := "Error: " + businessErr.Message
		if kind == KindPersistence && businessErr.Err != nil {
			message += ": " + businessErr.Err.Error()
		}
		return &CommandError{Kind: kind, Message: message, Err: err}
	}

	if errors.Is(err, middleware.ErrPanic) {
		return &CommandError{Kind: KindInternal, Message: "Error: internal error, the command was not completed", Err: err}
	}

	message := "Error: unexpected failure"
	if err != nil {
		message = "Error: " + err.Error()
	}
	return &CommandError{Kind: KindInternal, Message: message, Err: err}
}

func mapBusinessErrorToKind(code string) Kind {
	switch code {
	case service.CodeNotFound:
		return KindNotFound
	case service.CodeValidation:
		return KindValidation
	case service.CodePersistence:
		return KindPersistence
	default:
		return KindInternal
	}
}
