package authcore

import (
	"context"

	"go.uber.org/zap"
)

// ZapSink adapts a *zap.Logger to the [AuditSink] interface. Events with an
// error are logged at warn level, the rest at info.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps logger; a nil logger yields a no-op sink.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Emit(_ context.Context, event AuditEvent) {
	fields := []zap.Field{
		zap.Time("timestamp", event.Timestamp),
		zap.Bool("success", event.Success),
	}
	if event.SubjectID != "" {
		fields = append(fields, zap.String("subject_id", event.SubjectID))
	}
	if event.Role != "" {
		fields = append(fields, zap.String("role", event.Role))
	}
	if event.Persist != "" {
		fields = append(fields, zap.String("persist", event.Persist))
	}
	if event.Error != "" {
		fields = append(fields, zap.String("error", event.Error))
		s.logger.Warn(event.EventType, fields...)
		return
	}
	s.logger.Info(event.EventType, fields...)
}
