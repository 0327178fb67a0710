package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/Sorin-PSP/EatWise-sub000/client"
	"github.com/Sorin-PSP/EatWise-sub000/localcache"
	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/nutrition"
	"github.com/Sorin-PSP/EatWise-sub000/services"
)

// fakeBackend counts calls and serves canned data so the tests can pin
// down exactly when the stores go remote.
type fakeBackend struct {
	authed  bool
	offline bool

	foods   []models.Food
	entries []models.LogEntry
	water   map[string]float64

	err error // returned from every data call when set

	listFoodsCalls  int
	insertFoodCalls int
	updateFoodCalls int
	deleteFoodCalls int
	listLogCalls    int
	insertLogCalls  int
	deleteLogCalls  int
	getWaterCalls   int
	setWaterCalls   int

	nextID int
}

func (f *fakeBackend) Authenticated() bool { return f.authed }
func (f *fakeBackend) Offline() bool       { return f.offline }

func (f *fakeBackend) assignID() string {
	f.nextID++
	return fmt.Sprintf("srv-%d", f.nextID)
}

func (f *fakeBackend) ListFoods(ctx context.Context) ([]models.Food, error) {
	f.listFoodsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Food(nil), f.foods...), nil
}

func (f *fakeBackend) InsertFood(ctx context.Context, food models.Food) (models.Food, error) {
	f.insertFoodCalls++
	if f.err != nil {
		return models.Food{}, f.err
	}
	food.ID = f.assignID()
	f.foods = append(f.foods, food)
	return food, nil
}

func (f *fakeBackend) UpdateFood(ctx context.Context, id string, patch services.FoodPatch) (models.Food, error) {
	f.updateFoodCalls++
	if f.err != nil {
		return models.Food{}, f.err
	}
	for i := range f.foods {
		if f.foods[i].ID == id {
			patch.Apply(&f.foods[i])
			return f.foods[i], nil
		}
	}
	return models.Food{}, &client.Error{Kind: client.KindNotFound, Op: "fake.update"}
}

func (f *fakeBackend) DeleteFood(ctx context.Context, id string) error {
	f.deleteFoodCalls++
	return f.err
}

func (f *fakeBackend) ListLogEntries(ctx context.Context, date string) ([]models.LogEntry, error) {
	f.listLogCalls++
	if f.err != nil {
		return nil, f.err
	}
	var out []models.LogEntry
	for _, e := range f.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeBackend) InsertLogEntry(ctx context.Context, date string, mealType models.MealType, foodID string, quantity float64) (models.LogEntry, error) {
	f.insertLogCalls++
	if f.err != nil {
		return models.LogEntry{}, f.err
	}
	var food models.Food
	for _, fd := range f.foods {
		if fd.ID == foodID {
			food = fd
		}
	}
	if food.ID == "" {
		return models.LogEntry{}, &client.Error{Kind: client.KindNotFound, Op: "fake.insertLog"}
	}
	snap := nutrition.Snapshot(food, quantity)
	e := models.LogEntry{
		ID:       f.assignID(),
		Date:     date,
		MealType: mealType,
		FoodID:   foodID,
		FoodName: food.Name,
		Quantity: quantity,
		Unit:     food.Unit,
		Calories: snap.Calories,
		Protein:  snap.Protein,
		Carbs:    snap.Carbs,
		Fat:      snap.Fat,
		Fiber:    snap.Fiber,
	}
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeBackend) DeleteLogEntry(ctx context.Context, id string) error {
	f.deleteLogCalls++
	return f.err
}

func (f *fakeBackend) GetWater(ctx context.Context, date string) (float64, error) {
	f.getWaterCalls++
	if f.err != nil {
		return 0, f.err
	}
	return f.water[date], nil
}

func (f *fakeBackend) SetWater(ctx context.Context, date string, glasses float64) error {
	f.setWaterCalls++
	if f.err != nil {
		return f.err
	}
	if f.water == nil {
		f.water = make(map[string]float64)
	}
	f.water[date] = glasses
	return nil
}

var _ client.Backend = (*fakeBackend)(nil)

func newTestCache(t *testing.T) *localcache.Cache {
	t.Helper()
	c, err := localcache.New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("localcache.New: %v", err)
	}
	return c
}

func oats() models.Food {
	return models.Food{
		ID:       "srv-oats",
		Name:     "Oats",
		Calories: 389,
		Protein:  16.9,
		Carbs:    66.3,
		Fat:      6.9,
		Fiber:    10.6,
		Serving:  100,
		Unit:     models.UnitGrams,
		Category: models.CategoryCarbs,
	}
}
