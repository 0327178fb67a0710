package client

import (
	"context"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"
)

// Backend is the remote collaborator the stores talk to. The HTTP client
// implements it against the EatWise service; tests substitute fakes.
type Backend interface {
	// Authenticated reports whether a session token is held.
	Authenticated() bool
	// Offline reports whether the client has been put in offline mode.
	// When true the stores never attempt remote calls.
	Offline() bool

	ListFoods(ctx context.Context) ([]models.Food, error)
	InsertFood(ctx context.Context, food models.Food) (models.Food, error)
	UpdateFood(ctx context.Context, id string, patch services.FoodPatch) (models.Food, error)
	DeleteFood(ctx context.Context, id string) error

	ListLogEntries(ctx context.Context, date string) ([]models.LogEntry, error)
	InsertLogEntry(ctx context.Context, date string, mealType models.MealType, foodID string, quantity float64) (models.LogEntry, error)
	DeleteLogEntry(ctx context.Context, id string) error

	GetWater(ctx context.Context, date string) (float64, error)
	SetWater(ctx context.Context, date string, glasses float64) error
}
