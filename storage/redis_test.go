package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisTier(t *testing.T) (*RedisTier, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	tier, err := NewRedisTier(client)
	if err != nil {
		t.Fatalf("NewRedisTier failed: %v", err)
	}
	return tier, mr
}

func TestRedisTierRoundTrip(t *testing.T) {
	ctx := context.Background()
	tier, _ := newRedisTier(t)

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

func TestRedisTierMissingKey(t *testing.T) {
	tier, _ := newRedisTier(t)

	value, err := tier.Get(context.Background(), "auth.token")
	if err != nil {
		t.Fatalf("Get of missing key errored: %v", err)
	}
	if value != "" {
		t.Errorf("Get = %q, want empty", value)
	}
}

func TestRedisTierUnavailable(t *testing.T) {
	tier, mr := newRedisTier(t)
	mr.Close()

	if _, err := tier.Get(context.Background(), "auth.token"); !errors.Is(err, ErrTierUnavailable) {
		t.Errorf("Get error = %v, want ErrTierUnavailable", err)
	}
	if err := tier.Set(context.Background(), "auth.token", "x"); !errors.Is(err, ErrTierUnavailable) {
		t.Errorf("Set error = %v, want ErrTierUnavailable", err)
	}
}

func TestAdapterOverRedis(t *testing.T) {
	ctx := context.Background()
	tier, _ := newRedisTier(t)

	adapter, err := NewAdapter(tier, NewMemoryTier(), "auth.")
	if err != nil {
		t.Fatalf("NewAdapter failed: %v", err)
	}

	if err := adapter.Write(ctx, PersistLocal, Record{Token: "tok", Role: "USER"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	rec, err := adapter.Read(ctx)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if rec.Token != "tok" || rec.Role != "USER" {
		t.Errorf("Read = %+v", rec)
	}
}
