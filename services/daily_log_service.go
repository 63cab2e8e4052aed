package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"caloriex-backend/models"
	"caloriex-backend/utils"
)

// DailyLogService records foods eaten per meal and folds them into day
// totals. Aggregation is pure — totals are recomputed on every read, never
// persisted next to their source items.
type DailyLogService struct {
	db      *gorm.DB
	sources map[string]FoodSource
}

func NewDailyLogService(db *gorm.DB, sources ...FoodSource) *DailyLogService {
	m := make(map[string]FoodSource, len(sources))
	for _, src := range sources {
		m[src.Name()] = src
	}
	return &DailyLogService{db: db, sources: m}
}

// LogFood resolves the food through its source adapter, snapshots per-unit
// nutrition and appends the entry to the user's log for that date. The log
// for a date exists implicitly from its first entry.
func (s *DailyLogService) LogFood(
	ctx context.Context,
	userID uint,
	date, mealType, foodID, source string,
	quantity, servingSize float64,
) (*models.LoggedFood, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-MM-dd", date)
	}
	if quantity <= 0 {
		return nil, errors.New("quantity must be positive")
	}

	src, ok := s.sources[source]
	if !ok && source == models.SourceTemplate {
		// template records resolve through the custom store
		src, ok = s.sources[models.SourceCustom]
	}
	if !ok {
		return nil, fmt.Errorf("unknown food source %q", source)
	}

	rec, err := src.GetByID(ctx, foodID)
	if err != nil {
		return nil, err
	}

	if servingSize <= 0 {
		servingSize = rec.ServingSizeG
	}
	if servingSize <= 0 {
		servingSize = 100
	}
	perUnit := utils.NutritionForPortion(*rec, servingSize)

	entry := &models.LoggedFood{
		UserID:      userID,
		Date:        date,
		MealType:    mealType,
		FoodID:      rec.ID,
		Source:      rec.Source,
		FoodName:    rec.Name,
		Quantity:    quantity,
		ServingSize: servingSize,
		Calories:    perUnit.Calories,
		Protein:     perUnit.Protein,
		Carbs:       perUnit.Carbs,
		Fat:         perUnit.Fat,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, fmt.Errorf("persist log entry: %w", err)
	}
	return entry, nil
}

func (s *DailyLogService) ListDay(ctx context.Context, userID uint, date string) ([]models.LoggedFood, error) {
	var entries []models.LoggedFood
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *DailyLogService) DeleteEntry(ctx context.Context, userID, entryID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.LoggedFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DayTotals carries per-meal and whole-day sums for one date.
type DayTotals struct {
	Meals map[string]models.Nutrition `json:"meals"`
	Day   models.Nutrition            `json:"day"`
}

// AggregateDay sums nutrition * quantity per meal, then across meals. Pure:
// the same entries always produce the same totals.
func AggregateDay(entries []models.LoggedFood) DayTotals {
	totals := DayTotals{Meals: make(map[string]models.Nutrition)}
	for _, e := range entries {
		contrib := models.Nutrition{
			Calories: e.Calories,
			Protein:  e.Protein,
			Carbs:    e.Carbs,
			Fat:      e.Fat,
		}.Scale(e.Quantity)
		totals.Meals[e.MealType] = totals.Meals[e.MealType].Add(contrib)
		totals.Day = totals.Day.Add(contrib)
	}
	return totals
}

// Remaining is goals minus consumed; negative values signal the goal was
// exceeded and are intentionally not clamped.
func Remaining(consumed models.Nutrition, goal models.DailyGoal) models.Nutrition {
	return models.Nutrition{
		Calories: goal.Calories - consumed.Calories,
		Protein:  goal.Protein - consumed.Protein,
		Carbs:    goal.Carbs - consumed.Carbs,
		Fat:      goal.Fat - consumed.Fat,
	}
}

// ProgressPercent reports per-field percent of goal, clamped to [0,100] for
// display only.
func ProgressPercent(consumed models.Nutrition, goal models.DailyGoal) map[string]float64 {
	pct := func(consumed, target float64) float64 {
		if target <= 0 {
			return 0
		}
		p := consumed / target * 100
		if p > 100 {
			return 100
		}
		if p < 0 {
			return 0
		}
		return p
	}
	return map[string]float64{
		"calories": pct(consumed.Calories, goal.Calories),
		"protein":  pct(consumed.Protein, goal.Protein),
		"carbs":    pct(consumed.Carbs, goal.Carbs),
		"fat":      pct(consumed.Fat, goal.Fat),
	}
}
