package app

import (
	"context"
	"fmt"
	"io"
	"taskcli/internal/config"
	"taskcli/internal/interpreter"
	"taskcli/internal/logger"
	"taskcli/internal/repository/task/jsonfile"
	"taskcli/internal/service"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type App struct {
	config     *config.Config
	in         io.Reader
	out        io.Writer
	repository *jsonfile.Storage
	service    service.TaskService
	cli        *interpreter.Interpreter
	shutdowns  []func() error // выполняются в обратном порядке в Close
}

func New(cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		config:    cfg,
		in:        in,
		out:       out,
		shutdowns: make([]func() error, 0),
	}
}

// Init поднимает логгер, хранилище, сервис и интерпретатор.
// Любая ошибка здесь означает, что сессия не начнётся.
func (a *App) Init(ctx context.Context) error {
	if err := logger.Init(a.config.Logging.Development, a.config.Logging.Output); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	a.shutdowns = append(a.shutdowns, func() error {
		logger.Info("App: Завершение работы логгирования...")
		// stderr не поддерживает fsync, это не ошибка
		if err := logger.Sync(); err != nil && a.config.Logging.Output != "stderr" {
			return fmt.Errorf("sync logger: %w", err)
		}
		return nil
	})

	repository, err := jsonfile.New(ctx, a.config.Storage.File)
	if err != nil {
		return fmt.Errorf("open task file %s: %w", a.config.Storage.File, err)
	}
	a.repository = repository

	a.service = service.NewTaskService(a.repository)
	if err := a.service.HealthCheck(ctx); err != nil {
		return err
	}

	a.cli = interpreter.New(&a.service, a.out,
		interpreter.WithPrompt(a.config.Interface.Prompt),
		interpreter.WithColor(a.config.ColorEnabled()),
	)

	logger.Info("App: Приложение инициализировано",
		zap.String("task_file", a.repository.Path()),
		zap.Int("tasks", a.repository.Len()))
	return nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cli == nil {
		return fmt.Errorf("app is not initialized")
	}
	return a.cli.Run(ctx, a.in)
}

func (a *App) Close() error {
	var err error
	for i := len(a.shutdowns) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.shutdowns[i]())
	}
	a.shutdowns = nil
	return err
}
