package middleware

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"taskcli/internal/logger"
	repo "taskcli/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const CommandIdKey contextKey = "command_id"

// Command - разобранная строка ввода
type Command struct {
	Name string
	Args []string
}

type HandlerFunc func(ctx context.Context, cmd Command) error

type Middleware func(HandlerFunc) HandlerFunc

// Chain оборачивает handler так, что первый middleware выполняется первым
func Chain(handler HandlerFunc, middlewares ...Middleware) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func CommandID(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, cmd Command) error {
		commandId := GetCommandID(ctx)
		if commandId == "" {
			commandId = uuid.New().String()
		}

		ctx = context.WithValue(ctx, CommandIdKey, commandId)
		return next(ctx, cmd)
	}
}

func GetCommandID(ctx context.Context) string {
	if id, ok := ctx.Value(CommandIdKey).(string); ok {
		return id
	}
	return ""
}

func Logging(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, cmd Command) error {
		start := time.Now()
		commandId := GetCommandID(ctx)

		logger.CommandInfo(cmd.Name, cmd.Args,
			"CLI_IN: Начало команды",
			zap.String("command_id", commandId),
		)

		err := next(ctx, cmd)

		logLevel := zap.InfoLevel
		if err != nil {
			logLevel = zap.WarnLevel
			if errors.Is(err, repo.ErrPersistence) {
				logLevel = zap.ErrorLevel
			}
		}
		logger.Log(
			logLevel,
			"CLI_OUT: Завершение команды",
			zap.String("command_id", commandId),
			zap.String("command", cmd.Name),
			zap.Error(err),
			zap.Duration("ms", time.Since(start)),
		)

		return err
	}
}

var ErrPanic = errors.New("internal error")

// Recover не даёт панике в обработчике завершить сессию
func Recover(next HandlerFunc) HandlerFunc {
	return func(ctx context.Context, cmd Command) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("CLI: Паника в обработчике команды", fmt.Errorf("%v", r),
					zap.String("command_id", GetCommandID(ctx)),
					zap.String("command", cmd.Name),
					zap.ByteString("stack", debug.Stack()))
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
		return next(ctx, cmd)
	}
}
