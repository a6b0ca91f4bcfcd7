package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger interface shared by all usecases.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

var _ Logger = (*loggerImpl)(nil)

type loggerImpl struct {
	zap *zap.Logger
}

// NewLogger creates a new logger.
// If isProduction is true, logs are JSON-encoded and written to the given
// file as well as stdout. Otherwise, a development console logger is returned.
func NewLogger(isProduction bool, logFileName string, logLevel string) (Logger, error) {
	if isProduction {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
		if logFileName != "" {
			config.OutputPaths = append(config.OutputPaths, logFileName)
		}

		level, err := zapcore.ParseLevel(logLevel)
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(level)

		logger, err := config.Build()
		if err != nil {
			return nil, err
		}

		return &loggerImpl{zap: logger}, nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}

	return &loggerImpl{zap: logger}, nil
}

func (l *loggerImpl) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

func (l *loggerImpl) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

func (l *loggerImpl) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

func (l *loggerImpl) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

var _ Logger = (*NoOpLogger)(nil)

// NoOpLogger is a logger that discards everything. Useful in tests.
type NoOpLogger struct{}

func (NoOpLogger) Debug(msg string, fields ...zap.Field) {}

func (NoOpLogger) Info(msg string, fields ...zap.Field) {}

func (NoOpLogger) Warn(msg string, fields ...zap.Field) {}

func (NoOpLogger) Error(msg string, fields ...zap.Field) {}
