package channelmgr

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02T15:04:05.000Z07:00"))
}

// NewLogger returns a 'sugared' zap logger configured the way the teacher's
// daemons configure theirs: a development encoder with a custom timestamp
// format and stack traces disabled, since this component logs frequent,
// low-severity control-flow events rather than crash diagnostics.
func NewLogger(name string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = timeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar().Named(name), nil
}
