package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLevelWriter creates a rotating file writer under the configured
// log directory.
func newLevelWriter(config Config) zapcore.WriteSyncer {
	_ = os.MkdirAll(config.Director, 0o755)

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(config.Director, "plughost.log"),
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	})
}
