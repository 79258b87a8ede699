// Package logger provides structured logging using zap, with optional
// per-subsystem levels for the loggers handed out by Named.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the root logger. It is a no-op until Init runs, so packages may log
// unconditionally (tests never initialize it).
var Log = zap.NewNop()

var (
	// helpers is Log with the caller skipped past the package-level helpers.
	helpers = Log

	// base holds the unfiltered output cores, enabled down to the lowest
	// level any subsystem asks for. nil before Init.
	base       zapcore.Core
	subsystems map[string]zapcore.Level
)

// Rotation settings for the log file.
const (
	fileMaxSizeMB  = 10
	fileMaxBackups = 3
	fileMaxAgeDays = 7
)

// Options configures Init.
type Options struct {
	Level string // root level: debug, info, warn or error
	File  string // rotated log file, empty for none

	// Subsystems overrides the level of Named loggers, e.g. "texture": "debug".
	Subsystems map[string]string

	Console bool // write to stdout
}

// ParseLevel converts a level name. The empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// Init builds the root logger from opts. With neither console nor file
// output the logger stays a no-op.
func Init(opts Options) error {
	root, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	floor := root
	subs := make(map[string]zapcore.Level, len(opts.Subsystems))
	for name, s := range opts.Subsystems {
		lvl, err := ParseLevel(s)
		if err != nil {
			return fmt.Errorf("subsystem %s: %w", name, err)
		}
		subs[name] = lvl
		floor = min(floor, lvl)
	}

	var cores []zapcore.Core
	if opts.Console {
		cores = append(cores, zapcore.NewCore(consoleEncoder(), zapcore.Lock(os.Stdout), floor))
	}
	if opts.File != "" {
		writer := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    fileMaxSizeMB,
			MaxBackups: fileMaxBackups,
			MaxAge:     fileMaxAgeDays,
			Compress:   true,
			LocalTime:  true,
		}
		cores = append(cores, zapcore.NewCore(fileEncoder(), zapcore.AddSync(writer), floor))
	}

	if len(cores) == 0 {
		install(nil, nil, zap.NewNop())
		return nil
	}

	tee := zapcore.NewTee(cores...)
	filtered, err := zapcore.NewIncreaseLevelCore(tee, root)
	if err != nil {
		return err
	}
	install(tee, subs, zap.New(filtered, zap.AddCaller()))
	return nil
}

func install(core zapcore.Core, subs map[string]zapcore.Level, root *zap.Logger) {
	base = core
	subsystems = subs
	Log = root
	helpers = root.WithOptions(zap.AddCallerSkip(1))
}

func consoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	})
}

func fileEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// Named returns a child logger for a subsystem. A level configured for the
// subsystem replaces the root level, in either direction.
func Named(name string) *zap.Logger {
	lvl, ok := subsystems[name]
	if !ok || base == nil {
		return Log.Named(name)
	}
	core, err := zapcore.NewIncreaseLevelCore(base, lvl)
	if err != nil {
		return Log.Named(name)
	}
	return zap.New(core, zap.AddCaller()).Named(name)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	helpers.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	helpers.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	helpers.Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	helpers.Fatal(msg, fields...)
}
