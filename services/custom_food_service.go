package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"caloriex-backend/models"
)

// CustomFoodService serves operator- and user-curated foods plus the meal
// templates. Candidate lookups prefer a template matching the slot, then
// fall back to the plain custom catalog.
type CustomFoodService struct {
	db    *gorm.DB
	cache Cache
}

func NewCustomFoodService(db *gorm.DB, cache Cache) *CustomFoodService {
	return &CustomFoodService{db: db, cache: cache}
}

func (s *CustomFoodService) Name() string { return models.SourceCustom }

func (s *CustomFoodService) Search(ctx context.Context, term string, limit int) ([]models.FoodRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	term = strings.ToLower(strings.TrimSpace(term))
	key := fmt.Sprintf("custom:search:%s:%d", term, limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.FoodRecord), nil
	}

	pattern := "%" + term + "%"
	var foods []models.CustomFood
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern).
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, fmt.Errorf("%w: custom search: %v", ErrUpstream, err)
	}

	records := make([]models.FoodRecord, 0, len(foods))
	for _, f := range foods {
		records = append(records, customRecord(f))
	}
	s.cache.Set(key, records)
	return records, nil
}

// GetByID resolves "t:<id>" to a template, anything else to a custom food.
func (s *CustomFoodService) GetByID(ctx context.Context, id string) (*models.FoodRecord, error) {
	key := "custom:id:" + id
	if v, ok := s.cache.Get(key); ok {
		rec := v.(models.FoodRecord)
		return &rec, nil
	}

	if rawID, ok := strings.CutPrefix(id, "t:"); ok {
		numeric, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("template id %q: %v", id, err)
		}
		var tpl models.MealTemplate
		if err := s.db.WithContext(ctx).First(&tpl, uint(numeric)).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("template %s not found", id)
			}
			return nil, fmt.Errorf("%w: template get: %v", ErrUpstream, err)
		}
		rec := templateRecord(tpl)
		s.cache.Set(key, rec)
		return &rec, nil
	}

	numeric, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("custom food id %q: %v", id, err)
	}
	var food models.CustomFood
	if err := s.db.WithContext(ctx).First(&food, uint(numeric)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("custom food %s not found", id)
		}
		return nil, fmt.Errorf("%w: custom get: %v", ErrUpstream, err)
	}
	rec := customRecord(food)
	s.cache.Set(key, rec)
	return &rec, nil
}

func (s *CustomFoodService) Candidates(ctx context.Context, q CandidateQuery) ([]models.FoodRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 25
	}
	key := fmt.Sprintf("custom:candidates:%s:%s:%d", q.MealType, q.DietPreference, limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.FoodRecord), nil
	}

	var templates []models.MealTemplate
	query := s.db.WithContext(ctx).
		Where("meal_type = ?", q.MealType).
		Where("diet_preference = ? OR diet_preference = ''", q.DietPreference)
	if err := query.Limit(limit).Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("%w: template candidates: %v", ErrUpstream, err)
	}

	records := make([]models.FoodRecord, 0, limit)
	for _, tpl := range templates {
		records = append(records, templateRecord(tpl))
	}

	if len(records) == 0 {
		var foods []models.CustomFood
		if err := s.db.WithContext(ctx).Limit(limit).Find(&foods).Error; err != nil {
			return nil, fmt.Errorf("%w: custom candidates: %v", ErrUpstream, err)
		}
		for _, f := range foods {
			records = append(records, customRecord(f))
		}
	}

	s.cache.Set(key, records)
	return records, nil
}

func customRecord(f models.CustomFood) models.FoodRecord {
	return models.FoodRecord{
		ID:           strconv.FormatUint(uint64(f.ID), 10),
		Source:       models.SourceCustom,
		Name:         f.Name,
		Category:     f.Category,
		Description:  f.Description,
		ServingSizeG: f.ServingSizeG,
		Calories:     f.Calories,
		Protein:      f.Protein,
		Carbs:        f.Carbs,
		Fat:          f.Fat,
		Diet: models.FoodDietProperties{
			Tagged:              true,
			IsVegetarian:        f.IsVegetarian,
			IsVegan:             f.IsVegan,
			ContainsGluten:      f.ContainsGluten,
			ContainsOnionGarlic: f.ContainsOnionGarlic,
		},
		Medical: models.FoodMedicalProperties{
			Sodium: f.Sodium,
			Fiber:  f.Fiber,
			Sugar:  f.Sugar,
		},
	}
}

func templateRecord(t models.MealTemplate) models.FoodRecord {
	return models.FoodRecord{
		ID:           "t:" + strconv.FormatUint(uint64(t.ID), 10),
		Source:       models.SourceTemplate,
		Name:         t.Name,
		Category:     t.MealType,
		Description:  t.Description,
		ServingSizeG: t.ServingSizeG,
		Calories:     t.Calories,
		Protein:      t.Protein,
		Carbs:        t.Carbs,
		Fat:          t.Fat,
		Diet: models.FoodDietProperties{
			Tagged:              true,
			IsVegetarian:        t.IsVegetarian,
			IsVegan:             t.IsVegan,
			ContainsGluten:      t.ContainsGluten,
			ContainsOnionGarlic: t.ContainsOnionGarlic,
		},
	}
}
