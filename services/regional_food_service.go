package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"caloriex-backend/models"
)

// RegionalFoodService serves the locally-held Indian packaged/cooked food
// composition table. Search first matches the keyword tags, then falls back
// to a substring scan across name/category/description.
type RegionalFoodService struct {
	db    *gorm.DB
	cache Cache
}

func NewRegionalFoodService(db *gorm.DB, cache Cache) *RegionalFoodService {
	return &RegionalFoodService{db: db, cache: cache}
}

func (s *RegionalFoodService) Name() string { return models.SourceRegional }

func (s *RegionalFoodService) Search(ctx context.Context, term string, limit int) ([]models.FoodRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	term = strings.ToLower(strings.TrimSpace(term))
	key := fmt.Sprintf("regional:search:%s:%d", term, limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.FoodRecord), nil
	}

	var items []models.FoodItem
	pattern := "%" + term + "%"
	err := s.db.WithContext(ctx).
		Where("LOWER(keywords) LIKE ?", pattern).
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: regional keyword search: %v", ErrUpstream, err)
	}

	// no tagged match: full scan with substring matching
	if len(items) == 0 {
		err = s.db.WithContext(ctx).
			Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
				pattern, pattern, pattern).
			Limit(limit).
			Find(&items).Error
		if err != nil {
			return nil, fmt.Errorf("%w: regional scan: %v", ErrUpstream, err)
		}
	}

	records := make([]models.FoodRecord, 0, len(items))
	for _, it := range items {
		records = append(records, regionalRecord(it))
	}
	s.cache.Set(key, records)
	return records, nil
}

func (s *RegionalFoodService) GetByID(ctx context.Context, id string) (*models.FoodRecord, error) {
	key := "regional:id:" + id
	if v, ok := s.cache.Get(key); ok {
		rec := v.(models.FoodRecord)
		return &rec, nil
	}

	numeric, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("regional food id %q: %v", id, err)
	}
	var item models.FoodItem
	if err := s.db.WithContext(ctx).First(&item, uint(numeric)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("regional food %s not found", id)
		}
		return nil, fmt.Errorf("%w: regional get: %v", ErrUpstream, err)
	}

	rec := regionalRecord(item)
	s.cache.Set(key, rec)
	return &rec, nil
}

// Candidates pre-filters by the table's own dietary flags so the generator
// rarely has to reject what it gets back.
func (s *RegionalFoodService) Candidates(ctx context.Context, q CandidateQuery) ([]models.FoodRecord, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 25
	}
	key := fmt.Sprintf("regional:candidates:%s:%s:%d", q.MealType, q.DietPreference, limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.FoodRecord), nil
	}

	query := s.db.WithContext(ctx).Model(&models.FoodItem{})
	switch q.DietPreference {
	case "vegan":
		query = query.Where("is_vegan = ?", true)
	case "vegetarian", "indian-vegetarian", "eggetarian", "hindu-fasting", "sattvic-diet":
		query = query.Where("is_vegetarian = ?", true)
	case "jain-diet":
		query = query.Where("is_vegetarian = ? AND contains_onion_garlic = ? AND contains_root_vegetables = ?",
			true, false, false)
	case "gluten-free", "celiac":
		query = query.Where("contains_gluten = ?", false)
	}
	if q.MealType != "" {
		query = query.Where("LOWER(keywords) LIKE ?", "%"+strings.ToLower(q.MealType)+"%")
	}

	var items []models.FoodItem
	if err := query.Limit(limit).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: regional candidates: %v", ErrUpstream, err)
	}

	// meal-type tag too narrow: retry on diet flags alone
	if len(items) == 0 && q.MealType != "" {
		loose := q
		loose.MealType = ""
		recs, err := s.Candidates(ctx, loose)
		if err == nil {
			s.cache.Set(key, recs)
		}
		return recs, err
	}

	records := make([]models.FoodRecord, 0, len(items))
	for _, it := range items {
		records = append(records, regionalRecord(it))
	}
	s.cache.Set(key, records)
	return records, nil
}

func regionalRecord(it models.FoodItem) models.FoodRecord {
	return models.FoodRecord{
		ID:           strconv.FormatUint(uint64(it.ID), 10),
		Source:       models.SourceRegional,
		Name:         it.Name,
		Category:     it.Category,
		Description:  it.Description,
		ServingSizeG: it.ServingSizeG,
		Calories:     it.Calories,
		Protein:      it.Protein,
		Carbs:        it.Carbs,
		Fat:          it.Fat,
		Diet: models.FoodDietProperties{
			Tagged:                 true,
			IsVegetarian:           it.IsVegetarian,
			IsVegan:                it.IsVegan,
			ContainsGluten:         it.ContainsGluten,
			ContainsOnionGarlic:    it.ContainsOnionGarlic,
			ContainsRootVegetables: it.ContainsRootVegetables,
		},
		Medical: models.FoodMedicalProperties{
			GlycemicIndex: it.GlycemicIndex,
			Sodium:        it.Sodium,
			SaturatedFat:  it.SaturatedFat,
			Fiber:         it.Fiber,
			Sugar:         it.Sugar,
		},
	}
}
