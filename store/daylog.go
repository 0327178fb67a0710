package store

import (
	"context"
	"sync"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/nutrition"

	"go.uber.org/zap"
)

// DayLog is the daily log store: a per-date map of meal buckets, each entry
// carrying the nutrient snapshot frozen at add time.
type DayLog struct {
	backend client.Backend
	cache   *localcache.Cache
	log     *zap.Logger

	mu       sync.RWMutex
	state    State
	days     models.DailyLog
	onChange []func(models.DailyLog)
}

func NewDayLog(backend client.Backend, cache *localcache.Cache, logger *zap.Logger) *DayLog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DayLog{
		backend: backend,
		cache:   cache,
		log:     logger,
		days:    models.DailyLog{},
	}
}

func (d *DayLog) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

// OnChange registers an observer. After every mutation it receives a deep
// copy of the whole log, never the store-owned maps.
func (d *DayLog) OnChange(fn func(models.DailyLog)) {
	d.mu.Lock()
	d.onChange = append(d.onChange, fn)
	d.mu.Unlock()
}

// Snapshot returns a deep copy of the current log.
func (d *DayLog) Snapshot() models.DailyLog {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.days.Copy()
}

// Entries returns a copy of one bucket.
func (d *DayLog) Entries(date string, mealType models.MealType) []models.LogEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	buckets, ok := d.days[date]
	if !ok {
		return nil
	}
	return append([]models.LogEntry(nil), buckets[mealType]...)
}

// Totals sums the four buckets for a date.
func (d *DayLog) Totals(date string) nutrition.Totals {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return nutrition.DailyTotals(d.days, date)
}

func (d *DayLog) remoteAvailable() bool {
	return d.backend.Authenticated() && !d.backend.Offline()
}

// changed mirrors the log to the cache and notifies observers with a fresh
// copy. Callers invoke it after releasing no locks of their own; the store
// mutex must not be held.
func (d *DayLog) changed() {
	d.mu.RLock()
	snapshot := d.days.Copy()
	initialized := d.state == StateReady
	observers := append(([]func(models.DailyLog))(nil), d.onChange...)
	d.mu.RUnlock()

	if initialized {
		if err := d.cache.Put(localcache.KeyDailyLog, snapshot); err != nil {
			d.log.Warn("daily log cache write failed", zap.Error(err))
		}
	}
	for _, fn := range observers {
		fn(snapshot)
	}
}

// Load fills the store for one date: remote when possible (degrading to
// cache on failure), cache otherwise. Like the catalog, Load never fails.
func (d *DayLog) Load(ctx context.Context, date string) {
	d.mu.Lock()
	d.state = StateLoading
	d.mu.Unlock()

	var days models.DailyLog
	if !d.cache.Get(localcache.KeyDailyLog, &days) || days == nil {
		days = models.DailyLog{}
	}

	if d.remoteAvailable() {
		entries, err := d.backend.ListLogEntries(ctx, date)
		if err != nil {
			d.log.Warn("daily log fetch failed, using cached copy",
				zap.String("date", date), zap.Error(err))
		} else {
			buckets := models.MealBuckets{}
			for _, e := range entries {
				buckets[e.MealType] = append(buckets[e.MealType], e)
			}
			days[date] = buckets
		}
	}

	d.mu.Lock()
	d.days = days
	d.state = StateReady
	d.mu.Unlock()
	d.changed()
}

// AddEntry records a food for a meal. The "all" sentinel resolves to
// breakfast before storage; the coercion is logged because it is policy,
// not an accident. The snapshot is computed from the food now and never
// recomputed, even if the food changes later.
func (d *DayLog) AddEntry(ctx context.Context, date string, mealType models.MealType, food models.Food, quantity float64) (models.LogEntry, error) {
	if !models.ValidDate(date) {
		return models.LogEntry{}, &client.Error{Kind: client.KindValidationFailed, Op: "daylog.add", Message: "invalid date " + date}
	}
	if quantity <= 0 {
		return models.LogEntry{}, &client.Error{Kind: client.KindValidationFailed, Op: "daylog.add", Message: "quantity must be positive"}
	}
	if mealType == models.MealAll {
		d.log.Warn("meal type \"all\" coerced to breakfast", zap.String("date", date))
		mealType = models.MealBreakfast
	}
	if _, err := models.ParseMealType(string(mealType)); err != nil {
		return models.LogEntry{}, &client.Error{Kind: client.KindValidationFailed, Op: "daylog.add", Err: err}
	}

	var entry models.LogEntry
	// foods that only exist locally cannot be referenced remotely
	if d.remoteAvailable() && !models.IsLocalID(food.ID) {
		remote, err := d.backend.InsertLogEntry(ctx, date, mealType, food.ID, quantity)
		if err != nil {
			d.log.Error("remote log insert failed", zap.String("food", food.Name), zap.Error(err))
			return models.LogEntry{}, err
		}
		entry = remote
	} else {
		snap := nutrition.Snapshot(food, quantity)
		entry = models.LogEntry{
			ID:       newLocalID(),
			Date:     date,
			MealType: mealType,
			FoodID:   food.ID,
			FoodName: food.Name,
			Quantity: quantity,
			Unit:     food.Unit,
			Calories: snap.Calories,
			Protein:  snap.Protein,
			Carbs:    snap.Carbs,
			Fat:      snap.Fat,
			Fiber:    snap.Fiber,
		}
	}

	d.mu.Lock()
	if d.days[date] == nil {
		d.days[date] = models.MealBuckets{}
	}
	d.days[date][entry.MealType] = append(d.days[date][entry.MealType], entry)
	d.mu.Unlock()
	d.changed()
	return entry, nil
}

// RemoveEntry deletes one entry. With the "all" sentinel every bucket is
// searched and the first match removed. Reports whether an entry was found.
func (d *DayLog) RemoveEntry(ctx context.Context, date string, mealType models.MealType, entryID string) (bool, error) {
	if !models.IsLocalID(entryID) && d.remoteAvailable() {
		if err := d.backend.DeleteLogEntry(ctx, entryID); err != nil {
			d.log.Error("remote log delete failed", zap.String("id", entryID), zap.Error(err))
			return false, err
		}
	}

	buckets := models.MealTypes()
	if mealType != models.MealAll {
		buckets = []models.MealType{mealType}
	}

	removed := false
	d.mu.Lock()
	if day, ok := d.days[date]; ok {
	search:
		for _, mt := range buckets {
			for i, e := range day[mt] {
				if e.ID == entryID {
					day[mt] = append(day[mt][:i], day[mt][i+1:]...)
					removed = true
					break search
				}
			}
		}
	}
	d.mu.Unlock()

	if removed {
		d.changed()
	}
	return removed, nil
}

// LocalEntries lists entries still carrying local-only ids, grouped the way
// the sync push wants them.
func (d *DayLog) LocalEntries() []models.LogEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []models.LogEntry
	for _, buckets := range d.days {
		for _, mt := range models.MealTypes() {
			for _, e := range buckets[mt] {
				if models.IsLocalID(e.ID) {
					out = append(out, e)
				}
			}
		}
	}
	return out
}

// replaceEntry swaps a local entry for its backend-assigned version.
func (d *DayLog) replaceEntry(localID string, replacement models.LogEntry) {
	d.mu.Lock()
	if day, ok := d.days[replacement.Date]; ok {
		for _, mt := range models.MealTypes() {
			for i, e := range day[mt] {
				if e.ID == localID {
					if mt == replacement.MealType {
						day[mt][i] = replacement
					} else {
						day[mt] = append(day[mt][:i], day[mt][i+1:]...)
						day[replacement.MealType] = append(day[replacement.MealType], replacement)
					}
					d.mu.Unlock()
					d.changed()
					return
				}
			}
		}
	}
	d.mu.Unlock()
}
