package logger

import (
	"os"
	"strings"

	"github.com/taxdesk/tax-service/internal/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Every entry carries the service name and stage.
var Log *zap.Logger

const localStage = "local"

// Config selects the level and stage the logger is built for
type Config struct {
	Level string
	Stage string
}

// InitLogger builds the global logger for a stage. LOG_LEVEL overrides the
// stage default, which is debug when running locally and info elsewhere.
func InitLogger(stage string) {
	Log = New(Config{
		Level: os.Getenv("LOG_LEVEL"),
		Stage: stage,
	})
}

// New builds a logger without touching the global one.
// Prod writes JSON for CloudWatch; other stages write console lines.
func New(config Config) *zap.Logger {
	level := parseLevel(config.Level, config.Stage)

	var zapConfig zap.Config
	if config.Stage == constants.ProdEnvironment {
		zapConfig = zap.NewProductionConfig()
		zapConfig.EncoderConfig.TimeKey = "timestamp"
		zapConfig.EncoderConfig.MessageKey = "message"
		zapConfig.DisableStacktrace = level > zapcore.DebugLevel
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		if config.Stage == localStage {
			zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		zapConfig.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.InitialFields = map[string]interface{}{
		"service": constants.ServiceName,
		"stage":   config.Stage,
	}

	logger, err := zapConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger
}

// Named returns the global logger scoped to one component, e.g. "w2_service".
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

func parseLevel(level, stage string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case constants.ErrorLevel:
		return zapcore.ErrorLevel
	case "fatal":
		return zapcore.FatalLevel
	}
	if stage == localStage {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Fatal logs a message at FatalLevel and then calls os.Exit(1)
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return Log.Sync()
}
