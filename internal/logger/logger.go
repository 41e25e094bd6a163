package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// до Init логгер ничего не пишет, поэтому пакеты можно использовать в тестах
var Logger *zap.Logger = zap.NewNop()

// Init настраивает логгер. stdout занят интерактивной сессией,
// поэтому output - это файл или stderr.
func Init(development bool, output string) error {
	if output == "" {
		output = "stderr"
	}

	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
		if output == "stderr" {
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
	} else {
		config = zap.NewProductionConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{"stderr"}

	built, err := config.Build()
	if err != nil {
		return err
	}

	Logger = built
	return nil
}

func Sync() error {
	return Logger.Sync()
}

func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

func Log(lvl zapcore.Level, msg string, fields ...zap.Field) {
	Logger.Log(lvl, msg, fields...)
}

// CommandInfo логирует введённую команду вместе с её аргументами
func CommandInfo(command string, args []string, msg string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String("command", command),
		zap.Strings("args", args),
	}
	allFields = append(allFields, fields...)
	Logger.Info(msg, allFields...)
}

func Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	Logger.Error(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}
