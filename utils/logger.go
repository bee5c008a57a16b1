package utils

import (
	"log"

	"crownbeauty/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger; GetLogger builds it on first use.
var Logger *zap.Logger

// InitializeLogger builds a JSON logger in production and a coloured console
// logger elsewhere, at the level named by LOG_LEVEL.
func InitializeLogger() {
	var cfg zap.Config
	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(config.AppConfig.LogLevel, config.IsProduction()))
	cfg.InitialFields = map[string]interface{}{"service": "crownbeauty"}

	built, err := cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = built
	zap.ReplaceGlobals(Logger)
}

func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

// ComponentLogger scopes the global logger to one subsystem, e.g. "booking".
func ComponentLogger(component string) *zap.Logger {
	return GetLogger().Named(component)
}

// parseLevel falls back to info in production and debug elsewhere.
func parseLevel(level string, production bool) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil || level == "" {
		if production {
			return zap.InfoLevel
		}
		return zap.DebugLevel
	}
	return l
}
