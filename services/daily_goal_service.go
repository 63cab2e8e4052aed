package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"caloriex-backend/models"
)

// DailyGoalService owns the per-user macro targets. First access creates the
// document with defaults; updates are partial merges so the client only sends
// the fields it changes.
type DailyGoalService struct {
	db *gorm.DB
}

func NewDailyGoalService(db *gorm.DB) *DailyGoalService {
	return &DailyGoalService{db: db}
}

func defaultGoals(userID uint) models.DailyGoal {
	return models.DailyGoal{
		UserID:   userID,
		Calories: 2000,
		Protein:  100,
		Carbs:    250,
		Fat:      65,
	}
}

func (s *DailyGoalService) GetOrCreate(ctx context.Context, userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = defaultGoals(userID)
		if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GoalPatch carries only the fields the user wants to change.
type GoalPatch struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

func (s *DailyGoalService) Update(ctx context.Context, userID uint, patch GoalPatch) (*models.DailyGoal, error) {
	goal, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Calories != nil {
		goal.Calories = *patch.Calories
	}
	if patch.Protein != nil {
		goal.Protein = *patch.Protein
	}
	if patch.Carbs != nil {
		goal.Carbs = *patch.Carbs
	}
	if patch.Fat != nil {
		goal.Fat = *patch.Fat
	}

	if err := s.db.WithContext(ctx).Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}
