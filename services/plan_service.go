package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"caloriex-backend/models"
	"caloriex-backend/utils"
)

const generatorSource = "caloriex-generator-v2"

var planDayLabels = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

var mealSlotOrder = [4]string{"Breakfast", "Lunch", "Snack", "Dinner"}

// Calorie share per slot, used to size the synthetic fallback item.
var slotCalorieShare = map[string]float64{
	"Breakfast": 0.25,
	"Lunch":     0.35,
	"Dinner":    0.30,
	"Snack":     0.10,
}

// Fixed serving times when intermittent fasting drops the Breakfast slot.
var fastingSlotTimes = map[string]string{
	"Lunch":  "12:00 PM",
	"Snack":  "4:00 PM",
	"Dinner": "8:00 PM",
}

// PlanRequest is the generation request. Empty fields default from the
// profile; CalorieGoalOverride short-circuits the calorie computation.
type PlanRequest struct {
	DietPreference      string  `json:"diet_preference"`
	DietGoal            string  `json:"diet_goal"`
	Period              string  `json:"period"`
	GoalWeight          float64 `json:"goal_weight"`
	CalorieGoalOverride int     `json:"calorie_goal_override"`
}

// PlanService generates 7-day meal plans. The randomness source is injected
// so generation is reproducible under a fixed seed; rand.Rand is not
// goroutine-safe, so every draw from it goes through rngMu.
type PlanService struct {
	db            *gorm.DB
	regional      FoodSource
	custom        FoodSource
	international FoodSource
	rngMu         sync.Mutex
	rng           *rand.Rand
}

func NewPlanService(db *gorm.DB, regional, custom, international FoodSource, rng *rand.Rand) *PlanService {
	return &PlanService{
		db:            db,
		regional:      regional,
		custom:        custom,
		international: international,
		rng:           rng,
	}
}

type genParams struct {
	dietPreference string
	dietSub        string
	dietGoal       string
	calorieGoal    int
	allergens      []string
	fasting        bool
}

// Generate always yields a complete 7-day plan: slot-level failures fall back
// source by source and finally to a synthetic item, never aborting the week.
// Only an unusable profile refuses generation.
func (s *PlanService) Generate(ctx context.Context, user *models.User, req PlanRequest) (*models.MealPlan, error) {
	pref := req.DietPreference
	if pref == "" {
		pref = user.DietPreference
	}
	goal := req.DietGoal
	if goal == "" {
		goal = user.DietGoal
	}

	bmr, err := utils.BMR(user.Weight, user.Height, user.Age, user.Gender)
	if err != nil {
		return nil, err
	}
	tdee := utils.TDEE(bmr, user.ActivityLevel)

	calorieGoal := req.CalorieGoalOverride
	if calorieGoal <= 0 {
		goalWeight := req.GoalWeight
		if goalWeight <= 0 {
			goalWeight = user.Weight
		}
		calorieGoal = utils.CalorieGoal(user.Weight, goalWeight, tdee, req.Period, goal)
	}

	params := genParams{
		dietPreference: pref,
		dietSub:        dietSubFor(pref, user),
		dietGoal:       goal,
		calorieGoal:    calorieGoal,
		allergens:      AllergyTokens(user.Allergies),
		fasting:        pref == "intermittent-fasting",
	}

	// Seeds are drawn sequentially before the fan-out so day content is
	// deterministic under a fixed seed regardless of completion order.
	// Concurrent requests share s.rng, hence the lock.
	seeds := make([]int64, len(planDayLabels))
	s.rngMu.Lock()
	for i := range seeds {
		seeds[i] = s.rng.Int63()
	}
	s.rngMu.Unlock()

	days := make([]models.DayPlan, len(planDayLabels))
	g, gctx := errgroup.WithContext(ctx)
	for i, label := range planDayLabels {
		i, label := i, label
		g.Go(func() error {
			days[i] = s.generateDay(gctx, label, params, rand.New(rand.NewSource(seeds[i])))
			return nil
		})
	}
	_ = g.Wait() // day generation recovers everything locally

	conditions := splitConditions(user.MedicalConditions)
	days = utils.AnnotateWarnings(days, pref, params.dietSub, conditions)

	return &models.MealPlan{
		PlanID:            uuid.NewString(),
		UserID:            user.ID,
		DietPreference:    pref,
		DietGoal:          goal,
		CalorieGoal:       calorieGoal,
		Period:            req.Period,
		MedicalConditions: user.MedicalConditions,
		Allergies:         user.Allergies,
		Source:            generatorSource,
		GeneratedAt:       time.Now().UTC(),
		Days:              days,
	}, nil
}

// Save persists the plan. Callers still hand the in-memory plan to the user
// when this fails — a transient storage error must not lose a generated week.
func (s *PlanService) Save(ctx context.Context, plan *models.MealPlan) error {
	if err := s.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("persist meal plan: %w", err)
	}
	return nil
}

func (s *PlanService) ListPlans(ctx context.Context, userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *PlanService) GetPlan(ctx context.Context, userID uint, planID string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND plan_id = ?", userID, planID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *PlanService) generateDay(ctx context.Context, label string, params genParams, rng *rand.Rand) models.DayPlan {
	day := models.DayPlan{Day: label}
	for _, slot := range mealSlotOrder {
		if params.fasting && slot == "Breakfast" {
			continue
		}
		entry := s.generateSlot(ctx, slot, params, rng)
		if params.fasting {
			entry.Time = fastingSlotTimes[slot]
		}
		day.Meals = append(day.Meals, entry)
	}
	return day
}

// generateSlot walks the weighted source order; any source failing or coming
// back empty falls through to the next, ending at the synthetic item.
func (s *PlanService) generateSlot(ctx context.Context, slot string, params genParams, rng *rand.Rand) models.MealEntry {
	order := sourceOrder(params.dietPreference, rng, s.regional, s.custom, s.international)

	for _, src := range order {
		recs, err := src.Candidates(ctx, CandidateQuery{
			MealType:       slot,
			DietPreference: params.dietPreference,
			Limit:          25,
		})
		if err != nil {
			log.Printf("plan: source %s unavailable for %s: %v", src.Name(), slot, err)
			continue
		}

		eligible := recs[:0:0]
		for _, rec := range recs {
			if matchesAllergy(rec.Name, params.allergens) {
				continue
			}
			if !utils.DietCompliant(rec, params.dietPreference, params.dietSub) {
				continue
			}
			eligible = append(eligible, rec)
		}
		if len(eligible) == 0 {
			continue
		}

		rec := eligible[rng.Intn(len(eligible))]
		portion := utils.CalculatePortion(rec, params.dietGoal, slot)
		nut := utils.NutritionForPortion(rec, portion.Amount)
		item := models.PlanItem{
			FoodID:    rec.ID,
			Source:    rec.Source,
			Name:      rec.Name,
			Portion:   portion,
			Nutrition: nut,
			Medical:   rec.Medical,
		}
		return models.MealEntry{
			MealType: slot,
			Items:    []models.PlanItem{item},
			Totals:   nut,
		}
	}

	return fallbackEntry(slot, params.calorieGoal)
}

// fallbackEntry synthesizes a generic item carrying the slot's proportional
// calorie share, split 25/50/25 across protein/carb/fat kcal at 4/4/9 g.
func fallbackEntry(slot string, calorieGoal int) models.MealEntry {
	kcal := slotCalorieShare[slot] * float64(calorieGoal)
	nut := models.Nutrition{
		Calories: math.Round(kcal),
		Protein:  math.Round(kcal * 0.25 / 4),
		Carbs:    math.Round(kcal * 0.50 / 4),
		Fat:      math.Round(kcal * 0.25 / 9),
	}
	item := models.PlanItem{
		FoodID: "fallback",
		Source: "generated",
		Name:   fmt.Sprintf("Balanced %s (auto-suggested)", strings.ToLower(slot)),
		Portion: models.Portion{
			Amount:      1,
			Unit:        "serving",
			Description: "1 serving",
		},
		Nutrition: nut,
	}
	return models.MealEntry{
		MealType: slot,
		Items:    []models.PlanItem{item},
		Totals:   nut,
	}
}

func dietSubFor(pref string, user *models.User) string {
	switch pref {
	case "blood-type":
		return user.BloodType
	case "indian-regional":
		return user.Region
	}
	return ""
}

func splitConditions(raw string) []string {
	var out []string
	for _, c := range strings.Split(raw, ",") {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" && c != "none" {
			out = append(out, c)
		}
	}
	return out
}
