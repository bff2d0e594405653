package storage

import (
	"context"
	"testing"
)

func TestFileTierRoundTrip(t *testing.T) {
	ctx := context.Background()
	tier, err := NewFileTier(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileTier failed: %v", err)
	}

	if err := tier.Set(ctx, "auth.token", "tok"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, err := tier.Get(ctx, "auth.token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "tok" {
		t.Errorf("Get = %q", value)
	}

	if err := tier.Remove(ctx, "auth.token"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	value, err = tier.Get(ctx, "auth.token")
	if err != nil || value != "" {
		t.Errorf("Get after Remove = (%q, %v), want empty", value, err)
	}
}

func TestFileTierMissingKey(t *testing.T) {
	tier, err := NewFileTier(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileTier failed: %v", err)
	}

	value, err := tier.Get(context.Background(), "auth.token")
	if err != nil {
		t.Fatalf("Get of missing key errored: %v", err)
	}
	if value != "" {
		t.Errorf("Get = %q, want empty", value)
	}

	// Removing a missing key is a no-op.
	if err := tier.Remove(context.Background(), "auth.token"); err != nil {
		t.Errorf("Remove of missing key errored: %v", err)
	}
}

func TestFileTierSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileTier(dir)
	if err != nil {
		t.Fatalf("NewFileTier failed: %v", err)
	}
	if err := first.Set(ctx, "auth.token", "persisted"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	second, err := NewFileTier(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	value, err := second.Get(ctx, "auth.token")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "persisted" {
		t.Errorf("Get after reopen = %q", value)
	}
}

func TestFileTierRejectsPathKeys(t *testing.T) {
	tier, err := NewFileTier(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileTier failed: %v", err)
	}

	for _, key := range []string{"", "../escape", `a\b`} {
		if _, err := tier.Get(context.Background(), key); err == nil {
			t.Errorf("Get(%q) accepted an invalid key", key)
		}
	}
}
