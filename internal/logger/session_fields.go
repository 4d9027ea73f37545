package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldScenario is the structured log field key for the scenario id.
	FieldScenario = "scenario_id"
	// FieldDifficulty is the structured log field key for the scenario difficulty tier.
	FieldDifficulty = "difficulty"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields safely attaches the provided fields to the logger.
// If the logger is nil or no fields are supplied, the input logger is returned
// unchanged, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// SessionFields returns standard zap fields identifying the scenario a
// session was started from. Empty values are ignored to keep log entries
// compact when information is missing.
func SessionFields(scenarioID, difficulty string) []zap.Field {
	return StringFields(
		StringField{Key: FieldScenario, Value: scenarioID},
		StringField{Key: FieldDifficulty, Value: difficulty},
	)
}

// WithSessionFields attaches the session fields to the provided logger.
// If the logger is nil, a no-op logger is created to avoid panics.
func WithSessionFields(logger *zap.Logger, scenarioID, difficulty string) *zap.Logger {
	fields := SessionFields(scenarioID, difficulty)
	return WithFields(logger, fields...)
}
