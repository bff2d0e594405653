package authcore

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSinkLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := NewZapSink(zap.New(core))
	ctx := context.Background()

	sink.Emit(ctx, AuditEvent{EventType: EventLogin, SubjectID: "act-1", Success: true})
	sink.Emit(ctx, AuditEvent{EventType: EventStorageDegraded, Error: "tier down"})

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("logged %d entries, want 2", len(entries))
	}

	if entries[0].Level != zapcore.InfoLevel || entries[0].Message != EventLogin {
		t.Errorf("first entry = %s %q", entries[0].Level, entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["subject_id"] != "act-1" {
		t.Errorf("subject_id field = %v", fields["subject_id"])
	}

	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != EventStorageDegraded {
		t.Errorf("second entry = %s %q", entries[1].Level, entries[1].Message)
	}
	if logs.All()[1].ContextMap()["error"] != "tier down" {
		t.Errorf("error field = %v", entries[1].ContextMap()["error"])
	}
}

func TestZapSinkNilLogger(t *testing.T) {
	sink := NewZapSink(nil)
	// Must not panic.
	sink.Emit(context.Background(), AuditEvent{EventType: EventLogout})
}
