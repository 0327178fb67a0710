package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
)

func TestWaterGetRemoteMirrorsCache(t *testing.T) {
	backend := &fakeBackend{authed: true, water: map[string]float64{"2026-08-29": 6}}
	cache := newTestCache(t)
	w := NewWaterLog(backend, cache, nil)

	glasses, err := w.Get(context.Background(), "2026-08-29")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if glasses != 6 {
		t.Errorf("glasses = %v, want 6", glasses)
	}
	if backend.getWaterCalls != 1 {
		t.Errorf("getWaterCalls = %d, want 1", backend.getWaterCalls)
	}

	// the fetched value must now be readable without the backend
	offline := NewWaterLog(&fakeBackend{}, cache, nil)
	glasses, err = offline.Get(context.Background(), "2026-08-29")
	if err != nil {
		t.Fatalf("Get from cache: %v", err)
	}
	if glasses != 6 {
		t.Errorf("cached glasses = %v, want 6", glasses)
	}
}

func TestWaterGetDegradesToCacheOnError(t *testing.T) {
	cache := newTestCache(t)
	if err := cache.Put(localcache.KeyWater, map[string]float64{"2026-08-29": 4}); err != nil {
		t.Fatal(err)
	}

	backend := &fakeBackend{authed: true, err: &client.Error{Kind: client.KindNetworkUnavailable, Op: "fake.water"}}
	w := NewWaterLog(backend, cache, nil)

	glasses, err := w.Get(context.Background(), "2026-08-29")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if glasses != 4 {
		t.Errorf("glasses = %v, want cached 4", glasses)
	}
}

func TestWaterSetOfflinePersists(t *testing.T) {
	backend := &fakeBackend{}
	cache := newTestCache(t)
	w := NewWaterLog(backend, cache, nil)

	if err := w.Set(context.Background(), "2026-08-29", 5); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if backend.setWaterCalls != 0 {
		t.Errorf("setWaterCalls = %d, want 0 while signed out", backend.setWaterCalls)
	}

	var days map[string]float64
	if !cache.Get(localcache.KeyWater, &days) {
		t.Fatal("cache has no water payload")
	}
	if days["2026-08-29"] != 5 {
		t.Errorf("cached glasses = %v, want 5", days["2026-08-29"])
	}
}

func TestWaterSetRemoteFailureKeepsLocal(t *testing.T) {
	remoteErr := &client.Error{Kind: client.KindNetworkUnavailable, Op: "fake.water"}
	backend := &fakeBackend{authed: true, err: remoteErr}
	cache := newTestCache(t)
	w := NewWaterLog(backend, cache, nil)

	err := w.Set(context.Background(), "2026-08-29", 3)
	if !errors.Is(err, remoteErr) {
		t.Fatalf("Set error = %v, want the remote failure", err)
	}

	glasses, err := NewWaterLog(&fakeBackend{}, cache, nil).Get(context.Background(), "2026-08-29")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if glasses != 3 {
		t.Errorf("glasses = %v, want the locally applied 3", glasses)
	}
}

func TestWaterValidation(t *testing.T) {
	w := NewWaterLog(&fakeBackend{}, newTestCache(t), nil)

	if _, err := w.Get(context.Background(), "29-08-2026"); client.KindOf(err) != client.KindValidationFailed {
		t.Errorf("Get kind = %v, want ValidationFailed", client.KindOf(err))
	}
	if err := w.Set(context.Background(), "not-a-date", 2); client.KindOf(err) != client.KindValidationFailed {
		t.Errorf("Set kind = %v, want ValidationFailed", client.KindOf(err))
	}
	if err := w.Set(context.Background(), "2026-08-29", -1); client.KindOf(err) != client.KindValidationFailed {
		t.Errorf("negative Set kind = %v, want ValidationFailed", client.KindOf(err))
	}
}
