package infra

import (
	"context"
	"testing"

	"quota-gateway/middleware/ratelimit/domain"
)

func TestMemoryStatsStore_CountsByRoute(t *testing.T) {
	s := NewMemoryStatsStore()

	events := []domain.StatsEvent{
		{Key: "/app/status", Allowed: true, Method: "GET", Path: "/app/status"},
		{Key: "/app/status", Allowed: true, Method: "GET", Path: "/app/status"},
		{Key: "/app/status", Allowed: false, Method: "GET", Path: "/app/status"},
		{Key: "/create/user", Allowed: true, Method: "POST", Path: "/create/user"},
	}
	for _, ev := range events {
		if err := s.Record(context.Background(), ev); err != nil {
			t.Fatalf("unexpected Record error: %v", err)
		}
	}

	total := s.Total()
	if total.Allowed != 3 || total.Denied != 1 {
		t.Fatalf("expected total allowed=3 denied=1, got %+v", total)
	}

	byRoute := s.ByRoute()
	status := byRoute["GET /app/status"]
	if status.Allowed != 2 || status.Denied != 1 {
		t.Fatalf("expected GET /app/status allowed=2 denied=1, got %+v", status)
	}
	create := byRoute["POST /create/user"]
	if create.Allowed != 1 || create.Denied != 0 {
		t.Fatalf("expected POST /create/user allowed=1 denied=0, got %+v", create)
	}
}

func TestMemoryStatsStore_TracksKeysOnlyWhenEnabled(t *testing.T) {
	off := NewMemoryStatsStore()
	_ = off.Record(context.Background(), domain.StatsEvent{Key: "k", Allowed: true})
	if got := off.ByKey(); len(got) != 0 {
		t.Fatalf("expected no per-key tracking by default, got %v", got)
	}

	on := NewMemoryStatsStore(WithTrackKeys(true))
	_ = on.Record(context.Background(), domain.StatsEvent{Key: "k", Allowed: false})
	k := on.ByKey()["k"]
	if k.Denied != 1 {
		t.Fatalf("expected key k denied=1, got %+v", k)
	}
}
