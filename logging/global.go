package logging

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileOptions configures the optional rotating log file.
type LogFileOptions struct {
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
}

func (o LogFileOptions) writer() io.Writer {
	return &lumberjack.Logger{
		Filename:   o.FilePath,
		MaxSize:    o.MaxSize,
		MaxBackups: o.MaxBackups,
		MaxAge:     28, // days
		Compress:   false,
	}
}

func parseConfigLevel(levelName string) (zapcore.Level, error) {
	return zapcore.ParseLevel(levelName)
}

func parseConfigLevelEncoder(levelEncoderName string) zapcore.LevelEncoder {
	switch levelEncoderName {
	case "capitalColor":
		return zapcore.CapitalColorLevelEncoder
	case "capital":
		return zapcore.CapitalLevelEncoder
	case "lowercase":
		return zapcore.LowercaseLevelEncoder
	default:
		return zapcore.CapitalLevelEncoder
	}
}

func encoderConfig(levelEncoder zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:  "message",
		LevelKey:    "level",
		EncodeLevel: levelEncoder,
		TimeKey:     "time",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format("2006-01-02T15:04:05.000000Z"))
		},
		CallerKey:        "caller",
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		NameKey:          "name",
		ConsoleSeparator: "\t",
	}
}

// SetGlobalLogger replaces zap's global logger. Console output goes to stderr
// so that command output on stdout stays machine readable. When fileOpts is
// set, every entry is additionally written as JSON to a rotating file.
func SetGlobalLogger(levelName string, levelEncoderName string, logFormat string, fileOpts *LogFileOptions) error {
	level, err := parseConfigLevel(levelName)
	if err != nil {
		return err
	}

	cfg := encoderConfig(parseConfigLevelEncoder(levelEncoderName))

	var encoder zapcore.Encoder
	switch logFormat {
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(cfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(cfg)
	default:
		return fmt.Errorf("invalid log format: %s", logFormat)
	}

	consoleCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(level))

	if fileOpts == nil || fileOpts.FilePath == "" {
		zap.ReplaceGlobals(zap.New(consoleCore))
		return nil
	}

	lv := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return true // the file gets every entry, including debug
	})

	dev := zapcore.NewJSONEncoder(zap.NewDevelopmentEncoderConfig())
	fileCore := zapcore.NewCore(dev, zapcore.AddSync(fileOpts.writer()), lv)

	zap.ReplaceGlobals(zap.New(zapcore.NewTee(consoleCore, fileCore)))

	return nil
}

// CapturePanic logs a recovered panic together with its stack and panics
// again. It must be deferred directly.
func CapturePanic(logger *zap.Logger) {
	r := recover()
	if r == nil {
		return
	}

	defer func() { _ = logger.Sync() }()
	logger.Panic("recovered from panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
}
