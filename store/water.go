package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
	"github.com/Sorin-PSP/EatWise-sub000/models"

	"go.uber.org/zap"
)

// WaterLog tracks glasses of water per day. Same shape as the other stores:
// remote when a session is held and the client is online, the local cache
// otherwise, with every change mirrored into the cache.
type WaterLog struct {
	backend client.Backend
	cache   *localcache.Cache
	log     *zap.Logger

	mu   sync.Mutex
	days map[string]float64
}

func NewWaterLog(backend client.Backend, cache *localcache.Cache, logger *zap.Logger) *WaterLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaterLog{backend: backend, cache: cache, log: logger, days: make(map[string]float64)}
}

func (w *WaterLog) remoteAvailable() bool {
	return w.backend.Authenticated() && !w.backend.Offline()
}

func (w *WaterLog) restore() {
	if len(w.days) == 0 {
		w.cache.Get(localcache.KeyWater, &w.days)
		if w.days == nil {
			w.days = make(map[string]float64)
		}
	}
}

func (w *WaterLog) persist() {
	if err := w.cache.Put(localcache.KeyWater, w.days); err != nil {
		w.log.Warn("water cache write failed", zap.Error(err))
	}
}

// Get returns the glass count for date, preferring the backend and falling
// back to the cached value when signed out, offline or the fetch fails.
func (w *WaterLog) Get(ctx context.Context, date string) (float64, error) {
	if !models.ValidDate(date) {
		return 0, &client.Error{Kind: client.KindValidationFailed, Op: "water.get", Message: "invalid date " + date}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.restore()

	if w.remoteAvailable() {
		glasses, err := w.backend.GetWater(ctx, date)
		if err != nil {
			w.log.Warn("water fetch failed, using cached value", zap.String("date", date), zap.Error(err))
		} else {
			w.days[date] = glasses
			w.persist()
			return glasses, nil
		}
	}
	return w.days[date], nil
}

// Set records the glass count for date. The local value is written
// unconditionally; when the remote write fails its error is returned so the
// caller can surface it.
func (w *WaterLog) Set(ctx context.Context, date string, glasses float64) error {
	if !models.ValidDate(date) {
		return &client.Error{Kind: client.KindValidationFailed, Op: "water.set", Message: "invalid date " + date}
	}
	if glasses < 0 {
		return &client.Error{Kind: client.KindValidationFailed, Op: "water.set", Message: fmt.Sprintf("negative glass count %v", glasses)}
	}

	var remoteErr error
	if w.remoteAvailable() {
		if err := w.backend.SetWater(ctx, date, glasses); err != nil {
			w.log.Error("remote water update failed", zap.String("date", date), zap.Error(err))
			remoteErr = err
		}
	}

	w.mu.Lock()
	w.restore()
	w.days[date] = glasses
	w.persist()
	w.mu.Unlock()
	return remoteErr
}
