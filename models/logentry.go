package models

import (
	"fmt"
	"strings"
	"time"
)

// MealType partitions a day's log into its four buckets.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"

	// MealAll is an input sentinel used by add/remove flows, never stored.
	MealAll MealType = "all"
)

// MealTypes returns the four storable buckets in display order.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}
}

func ParseMealType(s string) (MealType, error) {
	switch MealType(strings.ToLower(s)) {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks, MealAll:
		return MealType(strings.ToLower(s)), nil
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// LogEntry is one recorded instance of a food consumed. The nutrient fields
// are a snapshot scaled to Quantity at creation time; the food reference is
// weak, so deleting the food leaves existing entries intact.
type LogEntry struct {
	ID       string   `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID   uint     `gorm:"index" json:"-"`
	Date     string   `gorm:"type:varchar(10);index" json:"date"` // YYYY-MM-DD
	MealType MealType `gorm:"type:varchar(12);index" json:"meal_type"`

	FoodID   string  `gorm:"type:varchar(64);index" json:"food_id"`
	FoodName string  `json:"food_name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `gorm:"type:varchar(8)" json:"unit"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`

	CreatedAt time.Time `json:"created_at"`
}

// MealBuckets holds one day's entries keyed by their bucket. Invariant:
// each entry's MealType matches the bucket it is stored under.
type MealBuckets map[MealType][]LogEntry

// DailyLog maps an ISO date (YYYY-MM-DD) to that day's buckets.
type DailyLog map[string]MealBuckets

// Copy returns a deep copy, so observers never alias store-owned slices.
func (d DailyLog) Copy() DailyLog {
	out := make(DailyLog, len(d))
	for date, buckets := range d {
		nb := make(MealBuckets, len(buckets))
		for mt, entries := range buckets {
			nb[mt] = append([]LogEntry(nil), entries...)
		}
		out[date] = nb
	}
	return out
}

// ValidDate reports whether s is an ISO calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
