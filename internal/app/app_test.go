package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskcli/internal/app"
	"taskcli/internal/config"
	"taskcli/internal/logger"
	"taskcli/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Cleanup(func() { logger.Logger = zap.NewNop() })

	dir := t.TempDir()
	color := false
	cfg := config.Default()
	cfg.Storage.File = filepath.Join(dir, "tasks.json")
	cfg.Logging.Output = filepath.Join(dir, "task-cli.log")
	cfg.Interface.Color = &color
	return cfg
}

func TestApp_Session(t *testing.T) {
	cfg := testConfig(t)
	out := new(bytes.Buffer)
	in := strings.NewReader("add \"buy milk\"\nlist\nexit\n")

	a := app.New(cfg, in, out)
	require.NoError(t, a.Init(context.Background()))
	require.NoError(t, a.Run(context.Background()))
	require.NoError(t, a.Close())

	assert.Contains(t, out.String(), "Welcome to the Task Tracker cli!")
	assert.Contains(t, out.String(), "Task added successfully")
	assert.Contains(t, out.String(), "Goodbye!")

	data, err := os.ReadFile(cfg.Storage.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "buy milk")

	logs, err := os.ReadFile(cfg.Logging.Output)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "App: Приложение инициализировано")
	assert.Contains(t, string(logs), "CLI_IN: Начало команды")
}

func TestApp_CorruptFileFailsInit(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Storage.File, []byte("{not json"), 0o644))

	a := app.New(cfg, strings.NewReader(""), new(bytes.Buffer))
	err := a.Init(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrCorruptFile)
	assert.NoError(t, a.Close())

	assert.Error(t, a.Run(context.Background()), "run without successful init")
}
