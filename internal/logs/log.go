package logs

import (
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spacehole-rogue/starfield/internal/config"
)

var logger *zap.Logger = zap.NewNop()

// Init builds the process logger: colored console output on stderr plus,
// when cfg.File is set, rotated JSON lines. Quiet drops the console core,
// which the terminal host needs because stderr shares the screen.
func Init(appName string, cfg config.LogConfig) error {
	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		lvl = zapcore.InfoLevel
	}
	atomicLevel := zap.NewAtomicLevelAt(lvl)

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	fileCfg := encoderCfg
	fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	if !cfg.Quiet {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), atomicLevel))
	}
	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(fileWriter), atomicLevel))
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}
	Use(zap.New(zapcore.NewTee(cores...), opts...).Named(appName))
	return nil
}

// Use replaces the process logger. Tests install zaptest loggers through it.
func Use(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	_ = logger.Sync()
	logger = l
}

// Logger returns the current process logger.
func Logger() *zap.Logger { return logger }

// Sync flushes buffered entries. Call before exit.
func Sync() { _ = logger.Sync() }

func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

func Info(msg string, fields ...zap.Field) { logger.Info(msg, fields...) }

func Warn(msg string, fields ...zap.Field) { logger.Warn(msg, fields...) }

func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }

// DPanic logs at DPanic level. In development mode the logger panics after
// writing the entry, so invariant violations fail loud while testing.
func DPanic(msg string, fields ...zap.Field) { logger.DPanic(msg, fields...) }

// Fatal logs and exits the process with status 1.
func Fatal(msg string, fields ...zap.Field) { logger.Fatal(msg, fields...) }
