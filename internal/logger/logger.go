package logger

import (
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger. Reports go to stdout, so logs go to stderr.
var Logger *zap.SugaredLogger

func init() {
	// No-op until Initialize runs, so packages can log from tests
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger
func Initialize(jsonOutput bool, verbose bool) error {
	level := zap.WarnLevel
	if verbose {
		level = zap.DebugLevel
	}

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		config.OutputPaths = []string{"stderr"}
		config.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err := config.Build()
		if err != nil {
			return err
		}
		Logger = zapLogger.Sugar()
		return nil
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoderConfig.CallerKey = ""

	Logger = zap.New(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		),
	).Sugar()
	return nil
}

// ForRun returns a child logger tagged with a fresh run id
func ForRun(command string) *zap.SugaredLogger {
	return Logger.With("command", command, "run_id", uuid.NewString())
}

// Sync flushes buffered log entries
func Sync() {
	_ = Logger.Sync()
}
