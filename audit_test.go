package authcore

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"
)

// blockingSink blocks inside Emit until released, to force dispatcher
// backpressure.
type blockingSink struct {
	started chan struct{}
	release chan struct{}
}

func (s *blockingSink) Emit(_ context.Context, _ AuditEvent) {
	s.started <- struct{}{}
	<-s.release
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	sink := &blockingSink{
		started: make(chan struct{}, 8),
		release: make(chan struct{}),
	}
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 1, DropIfFull: true}, sink)

	ctx := context.Background()
	d.emit(ctx, AuditEvent{EventType: "e1"})

	// Wait until the run goroutine is stuck inside the sink, then fill the
	// one-slot buffer and overflow it.
	select {
	case <-sink.started:
	case <-time.After(2 * time.Second):
		t.Fatal("sink never received the first event")
	}
	d.emit(ctx, AuditEvent{EventType: "e2"})
	d.emit(ctx, AuditEvent{EventType: "e3"})

	if got := d.droppedCount(); got != 1 {
		t.Errorf("droppedCount = %d, want 1", got)
	}

	close(sink.release)
	d.close()
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	sink := NewChannelSink(8)
	d := newAuditDispatcher(AuditConfig{Enabled: true, BufferSize: 8, DropIfFull: true}, sink)

	ctx := context.Background()
	d.emit(ctx, AuditEvent{EventType: "e1"})
	d.emit(ctx, AuditEvent{EventType: "e2"})
	d.close()

	for _, want := range []string{"e1", "e2"} {
		select {
		case event := <-sink.Events():
			if event.EventType != want {
				t.Errorf("event = %q, want %q", event.EventType, want)
			}
		default:
			t.Fatalf("event %q not delivered before close returned", want)
		}
	}
}

func TestDisabledDispatcherIsNil(t *testing.T) {
	d := newAuditDispatcher(AuditConfig{Enabled: false}, NoOpSink{})
	if d != nil {
		t.Fatal("disabled dispatcher should be nil")
	}

	// Nil-safe methods.
	d.emit(context.Background(), AuditEvent{EventType: "ignored"})
	if d.droppedCount() != 0 {
		t.Error("nil dispatcher reported drops")
	}
	d.close()
}

func TestWriterSinkEmitsJSONLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{
		EventType: EventLogin,
		SubjectID: "act-1",
		Role:      "USER",
		Success:   true,
	})

	line := buf.Bytes()
	if len(line) == 0 || line[len(line)-1] != '\n' {
		t.Fatalf("output not newline-terminated: %q", line)
	}

	var decoded AuditEvent
	if err := json.Unmarshal(line, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.EventType != EventLogin || decoded.SubjectID != "act-1" || !decoded.Success {
		t.Errorf("decoded = %+v", decoded)
	}
}
