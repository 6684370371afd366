// api/logging/logger.go

package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "casa-api"

// Log starts as a no-op logger so packages can log before InitLogger runs (tests, tools).
var Log *zap.Logger = zap.NewNop()

// InitLogger builds the JSON production logger writing to stdout and to
// api.log / api_error.log under logDirPath. LOG_LEVEL overrides level.
func InitLogger(logDirPath, level string) {
	config := zap.NewProductionConfig()
	config.Level.SetLevel(parseLevel(level, os.Getenv("LOG_LEVEL")))

	if err := os.MkdirAll(logDirPath, 0o755); err != nil {
		panic(err)
	}

	config.OutputPaths = []string{"stdout", filepath.Join(logDirPath, "api.log")}
	config.ErrorOutputPaths = []string{"stderr", filepath.Join(logDirPath, "api_error.log")}

	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.StacktraceKey = "stacktrace"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.InitialFields = map[string]interface{}{"service": serviceName}

	var err error
	Log, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(Log)
}

// parseLevel picks the first parseable level, falling back to info.
func parseLevel(candidates ...string) zapcore.Level {
	level := zapcore.InfoLevel
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if parsed, err := zapcore.ParseLevel(candidate); err == nil {
			level = parsed
		}
	}
	return level
}

func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}

func Sync() error {
	return Log.Sync()
}
