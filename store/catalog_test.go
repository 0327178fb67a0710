package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"
)

func TestCatalogLoadRemote(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: true, foods: []models.Food{oats()}}
	cache := newTestCache(t)
	cat := NewCatalog(backend, cache, nil)

	cat.Load(ctx)

	if cat.State() != StateReady {
		t.Fatalf("state = %v, want ready", cat.State())
	}
	foods := cat.Foods()
	if len(foods) != 1 || foods[0].Name != "Oats" {
		t.Fatalf("Foods = %+v", foods)
	}
	if foods[0].Image == "" {
		t.Error("remote food without image was not backfilled")
	}

	// the fetch also refreshed the cache
	var cached []models.Food
	if !cache.Get(localcache.KeyFoods, &cached) || len(cached) != 1 {
		t.Errorf("cache after load: %+v", cached)
	}
}

func TestCatalogLoadDegradesToCache(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)
	if err := cache.Put(localcache.KeyFoods, []models.Food{oats()}); err != nil {
		t.Fatal(err)
	}

	backend := &fakeBackend{authed: true, err: errors.New("connection refused")}
	cat := NewCatalog(backend, cache, nil)
	cat.Load(ctx)

	if cat.State() != StateReady {
		t.Fatalf("state = %v, want ready even after a failed fetch", cat.State())
	}
	if foods := cat.Foods(); len(foods) != 1 || foods[0].Name != "Oats" {
		t.Errorf("Foods = %+v, want the cached copy", foods)
	}
}

func TestCatalogLoadSignedOut(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: false, foods: []models.Food{oats()}}
	cat := NewCatalog(backend, newTestCache(t), nil)

	cat.Load(ctx)

	if backend.listFoodsCalls != 0 {
		t.Errorf("signed-out load hit the backend %d times", backend.listFoodsCalls)
	}
	if foods := cat.Foods(); len(foods) != 0 {
		t.Errorf("Foods = %+v, want empty with no cache", foods)
	}
}

func TestCatalogLoadOffline(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: true, offline: true, foods: []models.Food{oats()}}
	cat := NewCatalog(backend, newTestCache(t), nil)

	cat.Load(ctx)

	if backend.listFoodsCalls != 0 {
		t.Errorf("offline load hit the backend %d times", backend.listFoodsCalls)
	}
}

func TestCatalogAddRemote(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: true}
	cat := NewCatalog(backend, newTestCache(t), nil)
	cat.Load(ctx)

	food := oats()
	food.ID = ""
	added, err := cat.Add(ctx, food)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if models.IsLocalID(added.ID) || added.ID == "" {
		t.Errorf("remote add produced id %q, want a backend id", added.ID)
	}
	if backend.insertFoodCalls != 1 {
		t.Errorf("insertFoodCalls = %d", backend.insertFoodCalls)
	}
	if _, ok := cat.Find(added.ID); !ok {
		t.Error("added food not in the catalog")
	}
}

func TestCatalogAddOffline(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: false}
	cache := newTestCache(t)
	cat := NewCatalog(backend, cache, nil)
	cat.Load(ctx)

	food := oats()
	food.ID = ""
	food.Image = ""
	added, err := cat.Add(ctx, food)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !models.IsLocalID(added.ID) {
		t.Errorf("offline add produced id %q, want a local- id", added.ID)
	}
	if !strings.HasPrefix(added.ID, models.LocalIDPrefix) {
		t.Errorf("id %q does not carry the local prefix", added.ID)
	}
	if added.Image == "" {
		t.Error("offline add left the image empty")
	}
	if backend.insertFoodCalls != 0 {
		t.Errorf("offline add hit the backend %d times", backend.insertFoodCalls)
	}

	// survived to the cache
	var cached []models.Food
	if !cache.Get(localcache.KeyFoods, &cached) || len(cached) != 1 {
		t.Errorf("cache after offline add: %+v", cached)
	}
}

func TestCatalogAddValidation(t *testing.T) {
	ctx := context.Background()
	cat := NewCatalog(&fakeBackend{}, newTestCache(t), nil)
	cat.Load(ctx)

	bad := oats()
	bad.Name = "  "
	_, err := cat.Add(ctx, bad)
	if client.KindOf(err) != client.KindValidationFailed {
		t.Errorf("Add(blank name) kind = %v, want ValidationFailed", client.KindOf(err))
	}

	bad = oats()
	bad.Calories = -10
	_, err = cat.Add(ctx, bad)
	if client.KindOf(err) != client.KindValidationFailed {
		t.Errorf("Add(negative calories) kind = %v, want ValidationFailed", client.KindOf(err))
	}
}

func TestCatalogUpdateLocalOnlySkipsRemote(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: true}
	cat := NewCatalog(backend, newTestCache(t), nil)
	cat.Load(ctx)

	// created while signed out, then the user signed in
	backend.authed = false
	food := oats()
	food.ID = ""
	added, err := cat.Add(ctx, food)
	if err != nil {
		t.Fatal(err)
	}
	backend.authed = true

	name := "Steel-cut Oats"
	updated, err := cat.Update(ctx, added.ID, services.FoodPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != name {
		t.Errorf("Name = %q", updated.Name)
	}
	if backend.updateFoodCalls != 0 {
		t.Errorf("local-only update hit the backend %d times", backend.updateFoodCalls)
	}

	if err := cat.Delete(ctx, added.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if backend.deleteFoodCalls != 0 {
		t.Errorf("local-only delete hit the backend %d times", backend.deleteFoodCalls)
	}
}

func TestCatalogUpdateAppliesLocallyOnRemoteFailure(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: true, foods: []models.Food{oats()}}
	cat := NewCatalog(backend, newTestCache(t), nil)
	cat.Load(ctx)

	backend.err = errors.New("boom")
	name := "Rolled Oats"
	updated, err := cat.Update(ctx, "srv-oats", services.FoodPatch{Name: &name})
	if err == nil {
		t.Fatal("Update swallowed the remote failure")
	}
	if updated.Name != name {
		t.Errorf("local copy not updated: %+v", updated)
	}
	if f, _ := cat.Find("srv-oats"); f.Name != name {
		t.Errorf("catalog copy not updated: %+v", f)
	}
}

func TestCatalogUpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	cat := NewCatalog(&fakeBackend{}, newTestCache(t), nil)
	cat.Load(ctx)

	name := "x"
	_, err := cat.Update(ctx, "nope", services.FoodPatch{Name: &name})
	if client.KindOf(err) != client.KindNotFound {
		t.Errorf("kind = %v, want NotFound", client.KindOf(err))
	}
}

func TestCatalogDeleteKeepsLocalCopyOnRemoteFailure(t *testing.T) {
	ctx := context.Background()
	backend := &fakeBackend{authed: true, foods: []models.Food{oats()}}
	cat := NewCatalog(backend, newTestCache(t), nil)
	cat.Load(ctx)

	backend.err = errors.New("boom")
	if err := cat.Delete(ctx, "srv-oats"); err == nil {
		t.Fatal("Delete swallowed the remote failure")
	}
	if _, ok := cat.Find("srv-oats"); !ok {
		t.Error("food removed locally although the remote delete failed")
	}
}
