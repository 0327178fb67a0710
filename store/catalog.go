// Package store holds the client-side food catalog and daily log: in-memory
// collections mirrored to the local cache on every change and to the backend
// whenever a session is held and the client is online.
package store

import (
	"context"
	"sync"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"go.uber.org/zap"
)

// Catalog is the food catalog store.
type Catalog struct {
	backend client.Backend
	cache   *localcache.Cache
	log     *zap.Logger

	mu    sync.RWMutex
	state State
	foods []models.Food
}

func NewCatalog(backend client.Backend, cache *localcache.Cache, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{backend: backend, cache: cache, log: logger}
}

func (c *Catalog) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Foods returns a copy of the in-memory list.
func (c *Catalog) Foods() []models.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Food(nil), c.foods...)
}

func (c *Catalog) remoteAvailable() bool {
	return c.backend.Authenticated() && !c.backend.Offline()
}

// Load fills the store. With a session and connectivity it fetches the
// catalog (already name-ordered), backfills missing images and refreshes
// the cache; otherwise, or when the fetch fails, it falls back to the
// cached list. Load never returns an error: the degraded result is an
// empty catalog, not a failure.
func (c *Catalog) Load(ctx context.Context) {
	c.mu.Lock()
	c.state = StateLoading
	c.mu.Unlock()

	var foods []models.Food
	if c.remoteAvailable() {
		remote, err := c.backend.ListFoods(ctx)
		if err != nil {
			c.log.Warn("catalog fetch failed, using cached copy", zap.Error(err))
			c.cache.Get(localcache.KeyFoods, &foods)
		} else {
			foods = remote
			for i := range foods {
				if foods[i].Image == "" {
					foods[i].Image = utils.FoodImageURL(foods[i].Name, foods[i].Category)
				}
			}
			if err := c.cache.Put(localcache.KeyFoods, foods); err != nil {
				c.log.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	} else {
		c.cache.Get(localcache.KeyFoods, &foods)
	}

	c.mu.Lock()
	c.foods = foods
	c.state = StateReady
	c.mu.Unlock()
}

func (c *Catalog) persist() {
	if err := c.cache.Put(localcache.KeyFoods, c.Foods()); err != nil {
		c.log.Warn("catalog cache write failed", zap.Error(err))
	}
}

// Add validates and stores a new food. The returned food always carries a
// non-empty id and image: either the backend's, or a local id and the
// deterministic image lookup when the entry could not leave this machine.
func (c *Catalog) Add(ctx context.Context, food models.Food) (models.Food, error) {
	if err := food.Validate(); err != nil {
		return models.Food{}, &client.Error{Kind: client.KindValidationFailed, Op: "catalog.add", Err: err}
	}
	if food.Image == "" {
		food.Image = utils.FoodImageURL(food.Name, food.Category)
	}

	if c.remoteAvailable() {
		created, err := c.backend.InsertFood(ctx, food)
		if err != nil {
			c.log.Error("remote food insert failed", zap.String("name", food.Name), zap.Error(err))
			return models.Food{}, err
		}
		if created.Image == "" {
			created.Image = food.Image
		}
		food = created
	} else {
		food.ID = newLocalID()
	}

	c.mu.Lock()
	c.foods = append(c.foods, food)
	c.mu.Unlock()
	c.persist()
	return food, nil
}

// Update pushes the patch remotely first (unless the id never left this
// machine), then applies it in memory. The local apply happens even when
// the remote call failed: last-writer-wins, and the error is returned so
// the caller can surface it.
func (c *Catalog) Update(ctx context.Context, id string, patch services.FoodPatch) (models.Food, error) {
	var remoteErr error
	if !models.IsLocalID(id) && c.remoteAvailable() {
		if _, err := c.backend.UpdateFood(ctx, id, patch); err != nil {
			c.log.Error("remote food update failed", zap.String("id", id), zap.Error(err))
			remoteErr = err
		}
	}

	c.mu.Lock()
	var updated models.Food
	found := false
	for i := range c.foods {
		if c.foods[i].ID == id {
			patch.Apply(&c.foods[i])
			updated = c.foods[i]
			found = true
			break
		}
	}
	c.mu.Unlock()

	if !found {
		return models.Food{}, &client.Error{Kind: client.KindNotFound, Op: "catalog.update", Message: id}
	}
	c.persist()
	return updated, remoteErr
}

// Delete removes the entry, remote first for backend-assigned ids. The
// in-memory removal is unconditional once the remote delete (if attempted)
// did not fail.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	if !models.IsLocalID(id) && c.remoteAvailable() {
		if err := c.backend.DeleteFood(ctx, id); err != nil {
			c.log.Error("remote food delete failed", zap.String("id", id), zap.Error(err))
			return err
		}
	}

	c.mu.Lock()
	for i := range c.foods {
		if c.foods[i].ID == id {
			c.foods = append(c.foods[:i], c.foods[i+1:]...)
			break
		}
	}
	c.mu.Unlock()
	c.persist()
	return nil
}

// Find looks a food up by id in the loaded catalog.
func (c *Catalog) Find(id string) (models.Food, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, f := range c.foods {
		if f.ID == id {
			return f, true
		}
	}
	return models.Food{}, false
}
