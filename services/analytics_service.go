package services

import (
	"context"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/nutrition"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	db         *gorm.DB
	logSvc     *LogService
	profileSvc *ProfileService
	waterSvc   *WaterService
}

func NewAnalyticsService(db *gorm.DB, logSvc *LogService, profileSvc *ProfileService, waterSvc *WaterService) *AnalyticsService {
	return &AnalyticsService{db: db, logSvc: logSvc, profileSvc: profileSvc, waterSvc: waterSvc}
}

type NutrientProgress struct {
	Consumed float64 `json:"consumed"`
	Goal     float64 `json:"goal"`
	Percent  float64 `json:"percent"`
}

// Progress is one day's consumption against the profile goals, the data
// behind the dashboard rings.
type Progress struct {
	Date     string           `json:"date"`
	Calories NutrientProgress `json:"calories"`
	Protein  NutrientProgress `json:"protein"`
	Carbs    NutrientProgress `json:"carbs"`
	Fat      NutrientProgress `json:"fat"`
	Fiber    NutrientProgress `json:"fiber"`
	Water    NutrientProgress `json:"water"`
}

func pct(consumed, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := consumed / target
	if p > 1 {
		return 1
	}
	return p
}

func (s *AnalyticsService) DailyProgress(ctx context.Context, userID uint, email, date string) (*Progress, error) {
	profile, err := s.profileSvc.Get(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	totals, err := s.logSvc.Totals(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	water, err := s.waterSvc.Get(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	return &Progress{
		Date:     date,
		Calories: NutrientProgress{totals.Calories, profile.CalorieGoal, pct(totals.Calories, profile.CalorieGoal)},
		Protein:  NutrientProgress{totals.Protein, profile.ProteinGoal, pct(totals.Protein, profile.ProteinGoal)},
		Carbs:    NutrientProgress{totals.Carbs, profile.CarbGoal, pct(totals.Carbs, profile.CarbGoal)},
		Fat:      NutrientProgress{totals.Fat, profile.FatGoal, pct(totals.Fat, profile.FatGoal)},
		Fiber:    NutrientProgress{totals.Fiber, profile.FiberGoal, pct(totals.Fiber, profile.FiberGoal)},
		Water:    NutrientProgress{water, profile.WaterGoal, pct(water, profile.WaterGoal)},
	}, nil
}

type DayPoint struct {
	Date   string           `json:"date"`
	Totals nutrition.Totals `json:"totals"`
}

type Summary struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Days    []DayPoint       `json:"days"`
	Average nutrition.Totals `json:"average"`
}

// Summarize builds the per-day nutrient series for [from, to], filling
// zero points for days with no entries so charts keep a continuous axis.
func (s *AnalyticsService) Summarize(ctx context.Context, userID uint, from, to string) (*Summary, error) {
	entries, err := s.logSvc.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.LogEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, err
	}

	out := &Summary{From: from, To: to}
	var sum nutrition.Totals
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		totals := nutrition.SumEntries(byDate[date])
		out.Days = append(out.Days, DayPoint{Date: date, Totals: totals})
		sum.Calories += totals.Calories
		sum.Protein += totals.Protein
		sum.Carbs += totals.Carbs
		sum.Fat += totals.Fat
		sum.Fiber += totals.Fiber
		days++
	}

	if days > 0 {
		out.Average = nutrition.Totals{
			Calories: nutrition.Round1(sum.Calories / float64(days)),
			Protein:  nutrition.Round1(sum.Protein / float64(days)),
			Carbs:    nutrition.Round1(sum.Carbs / float64(days)),
			Fat:      nutrition.Round1(sum.Fat / float64(days)),
			Fiber:    nutrition.Round1(sum.Fiber / float64(days)),
		}
	}
	return out, nil
}
