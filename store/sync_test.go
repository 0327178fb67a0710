package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/models"
)

// buildOfflineBacklog logs entries against d while signed out and then
// flips the backend to authenticated, the state a sync push starts from.
func buildOfflineBacklog(t *testing.T, d *DayLog, backend *fakeBackend, n int) []models.LogEntry {
	t.Helper()
	ctx := context.Background()
	backend.authed = false
	var out []models.LogEntry
	for i := 0; i < n; i++ {
		e, err := d.AddEntry(ctx, testDate, models.MealLunch, oats(), 100)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, e)
	}
	backend.authed = true
	return out
}

func TestSyncPushReplacesLocalIDs(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{foods: []models.Food{oats()}}
	d := NewDayLog(backend, newTestCache(t), nil)
	d.Load(ctx, testDate)

	locals := buildOfflineBacklog(t, d, backend, 3)

	s := NewSyncTrigger(backend, d, nil)
	s.Push(ctx)

	if backend.insertLogCalls != 3 {
		t.Errorf("insertLogCalls = %d, want 3", backend.insertLogCalls)
	}
	if remaining := d.LocalEntries(); len(remaining) != 0 {
		t.Errorf("%d entries still local after push", len(remaining))
	}

	entries := d.Entries(testDate, models.MealLunch)
	if len(entries) != len(locals) {
		t.Fatalf("bucket length %d after push, want %d", len(entries), len(locals))
	}
	for _, e := range entries {
		if models.IsLocalID(e.ID) {
			t.Errorf("entry %q kept its local id", e.ID)
		}
	}
}

func TestSyncPushSkipsLocalOnlyFoods(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{foods: []models.Food{oats()}}
	d := NewDayLog(backend, newTestCache(t), nil)
	d.Load(ctx, testDate)

	backend.authed = false
	localFood := oats()
	localFood.ID = "local-1700000000-xyz"
	if _, err := d.AddEntry(ctx, testDate, models.MealSnacks, localFood, 100); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddEntry(ctx, testDate, models.MealLunch, oats(), 100); err != nil {
		t.Fatal(err)
	}
	backend.authed = true

	NewSyncTrigger(backend, d, nil).Push(ctx)

	if backend.insertLogCalls != 1 {
		t.Errorf("insertLogCalls = %d, want 1 (local-only food skipped)", backend.insertLogCalls)
	}
	if remaining := d.LocalEntries(); len(remaining) != 1 {
		t.Errorf("LocalEntries = %d, want the local-only food's entry", len(remaining))
	}
}

func TestSyncPushKeepsFailedEntriesLocal(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{foods: []models.Food{oats()}}
	d := NewDayLog(backend, newTestCache(t), nil)
	d.Load(ctx, testDate)

	buildOfflineBacklog(t, d, backend, 2)

	backend.err = errors.New("boom")
	NewSyncTrigger(backend, d, nil).Push(ctx)

	if remaining := d.LocalEntries(); len(remaining) != 2 {
		t.Errorf("LocalEntries = %d after failed push, want 2", len(remaining))
	}
	// entries themselves stay in the bucket
	if got := d.Entries(testDate, models.MealLunch); len(got) != 2 {
		t.Errorf("bucket = %+v", got)
	}
}

// Signing in through the real client must kick off a background push of
// the offline backlog without any explicit sync call.
func TestSyncAttachPushesOnSignIn(t *testing.T) {
	ctx := context.Background()

	var served int
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(client.Session{Token: "tok-1", UserID: 7, Email: "user@example.com", Role: models.RoleUser})
	})
	mux.HandleFunc("/log", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Date     string  `json:"date"`
			MealType string  `json:"meal_type"`
			FoodID   string  `json:"food_id"`
			Quantity float64 `json:"quantity"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		served++
		json.NewEncoder(w).Encode(models.LogEntry{
			ID:       fmt.Sprintf("srv-%d", served),
			Date:     req.Date,
			MealType: models.MealType(req.MealType),
			FoodID:   req.FoodID,
			Quantity: req.Quantity,
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c := client.New(srv.URL, nil)
	d := NewDayLog(c, newTestCache(t), nil)
	d.Load(ctx, testDate)

	// logged while signed out
	if _, err := d.AddEntry(ctx, testDate, models.MealLunch, oats(), 100); err != nil {
		t.Fatal(err)
	}

	NewSyncTrigger(c, d, nil).Attach(c)
	if _, err := c.SignIn(ctx, "user@example.com", "hunter2"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for len(d.LocalEntries()) > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("backlog never pushed; %d entries still local", len(d.LocalEntries()))
		}
		time.Sleep(10 * time.Millisecond)
	}
	if entries := d.Entries(testDate, models.MealLunch); len(entries) != 1 || models.IsLocalID(entries[0].ID) {
		t.Errorf("entries after push: %+v", entries)
	}
}

func TestSyncPushNoopWhenSignedOut(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{foods: []models.Food{oats()}}
	d := NewDayLog(backend, newTestCache(t), nil)
	d.Load(ctx, testDate)
	buildOfflineBacklog(t, d, backend, 1)

	backend.authed = false
	NewSyncTrigger(backend, d, nil).Push(ctx)
	if backend.insertLogCalls != 0 {
		t.Errorf("signed-out push hit the backend %d times", backend.insertLogCalls)
	}

	backend.authed = true
	backend.offline = true
	NewSyncTrigger(backend, d, nil).Push(ctx)
	if backend.insertLogCalls != 0 {
		t.Errorf("offline push hit the backend %d times", backend.insertLogCalls)
	}
}
