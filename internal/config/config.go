// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yml"

const (
	EnvConfigPath = "TASK_CLI_CONFIG"
	EnvTaskFile   = "TASK_CLI_FILE"
	EnvLogOutput  = "TASK_CLI_LOG"
)

type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Logging   LoggingConfig   `yaml:"logging"`
	Interface InterfaceConfig `yaml:"interface"`
}

type StorageConfig struct {
	File string `yaml:"file"`
}

type LoggingConfig struct {
	Development bool   `yaml:"development"`
	Output      string `yaml:"output"` // путь к файлу или "stderr"
}

type InterfaceConfig struct {
	Prompt string `yaml:"prompt"`
	Color  *bool  `yaml:"color"`
}

func Default() *Config {
	color := true
	return &Config{
		Storage: StorageConfig{
			File: "tasks.json",
		},
		Logging: LoggingConfig{
			Development: false,
			Output:      "task-cli.log",
		},
		Interface: InterfaceConfig{
			Prompt: "task-cli ",
			Color:  &color,
		},
	}
}

// Load читает config.yml (или файл из TASK_CLI_CONFIG) поверх значений по умолчанию.
// Отсутствующий файл - не ошибка.
func Load() (*Config, error) {
	path := DefaultPath
	if fromEnv, ok := os.LookupEnv(EnvConfigPath); ok && fromEnv != "" {
		path = fromEnv
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// остаются значения по умолчанию
	case err != nil:
		return nil, fmt.Errorf("open %s: %w", path, err)
	default:
		defer file.Close()

		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvTaskFile); ok && v != "" {
		c.Storage.File = v
	}
	if v, ok := os.LookupEnv(EnvLogOutput); ok && v != "" {
		c.Logging.Output = v
	}
}

// fillDefaults возвращает значения по умолчанию для явно очищенных полей
func (c *Config) fillDefaults() {
	def := Default()
	if c.Storage.File == "" {
		c.Storage.File = def.Storage.File
	}
	if c.Logging.Output == "" {
		c.Logging.Output = def.Logging.Output
	}
	if c.Interface.Prompt == "" {
		c.Interface.Prompt = def.Interface.Prompt
	}
	if c.Interface.Color == nil {
		c.Interface.Color = def.Interface.Color
	}
}

func (c *Config) ColorEnabled() bool {
	return c.Interface.Color == nil || *c.Interface.Color
}
