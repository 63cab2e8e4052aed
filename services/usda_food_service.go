package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"caloriex-backend/models"
)

// Nutrient numbers from the USDA food-data convention. These codes are wire
// compatibility with the existing dataset and must not change.
const (
	nutrientCalories = "208"
	nutrientProtein  = "203"
	nutrientFat      = "204"
	nutrientCarbs    = "205"
	nutrientFiber    = "291"
	nutrientSugar    = "269"
	nutrientSodium   = "307"
)

// USDAFoodService wraps the rate-limited international composition database
// behind its same-origin proxy. Every distinct (action, query, page) lookup
// is memoized through the injected cache — the generator issues dozens of
// lookups per plan.
type USDAFoodService struct {
	baseURL string
	client  *http.Client
	cache   Cache
}

func NewUSDAFoodService(cache Cache) *USDAFoodService {
	base := os.Getenv("USDA_PROXY_URL")
	if base == "" {
		base = "https://api.nal.usda.gov/fdc/proxy"
	}
	return &USDAFoodService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

func (s *USDAFoodService) Name() string { return models.SourceInternational }

type usdaNutrient struct {
	Number string  `json:"nutrientNumber"`
	Value  float64 `json:"value"`
}

type usdaFood struct {
	FdcID         int64          `json:"fdcId"`
	Description   string         `json:"description"`
	FoodCategory  string         `json:"foodCategory"`
	ServingSize   float64        `json:"servingSize"`
	FoodNutrients []usdaNutrient `json:"foodNutrients"`
}

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

func (s *USDAFoodService) Search(ctx context.Context, term string, limit int) ([]models.FoodRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	key := fmt.Sprintf("usda:search:%s:1:%d", term, limit)
	if v, ok := s.cache.Get(key); ok {
		return v.([]models.FoodRecord), nil
	}

	u := fmt.Sprintf("%s?action=search&query=%s&pageNumber=1&pageSize=%d",
		s.baseURL, url.QueryEscape(term), limit)
	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	records := make([]models.FoodRecord, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		records = append(records, usdaRecord(f))
	}
	s.cache.Set(key, records)
	return records, nil
}

func (s *USDAFoodService) GetByID(ctx context.Context, id string) (*models.FoodRecord, error) {
	key := "usda:details:" + id
	if v, ok := s.cache.Get(key); ok {
		rec := v.(models.FoodRecord)
		return &rec, nil
	}

	u := fmt.Sprintf("%s?action=details&fdcId=%s", s.baseURL, url.QueryEscape(id))
	body, err := s.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var f usdaFood
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("failed to parse details response: %w", err)
	}
	if f.FdcID == 0 {
		return nil, fmt.Errorf("food %s not found in international database", id)
	}

	rec := usdaRecord(f)
	s.cache.Set(key, rec)
	return &rec, nil
}

func (s *USDAFoodService) Candidates(ctx context.Context, q CandidateQuery) ([]models.FoodRecord, error) {
	terms := slotSearchTerms[q.MealType]
	if len(terms) == 0 {
		terms = []string{"meal"}
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 25
	}
	per := limit/len(terms) + 1

	var records []models.FoodRecord
	for _, term := range terms {
		found, err := s.Search(ctx, term, per)
		if err != nil {
			// partial availability is fine, total failure is not
			if len(records) == 0 {
				return nil, err
			}
			break
		}
		records = append(records, found...)
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// get performs the proxy call, keeping upstream error statuses distinct from
// "no results" (which is a 200 with an empty foods array).
func (s *USDAFoodService) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: proxy status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}
	return body, nil
}

func usdaRecord(f usdaFood) models.FoodRecord {
	rec := models.FoodRecord{
		ID:           strconv.FormatInt(f.FdcID, 10),
		Source:       models.SourceInternational,
		Name:         f.Description,
		Category:     f.FoodCategory,
		ServingSizeG: f.ServingSize,
	}
	for _, n := range f.FoodNutrients {
		switch n.Number {
		case nutrientCalories:
			rec.Calories = n.Value
		case nutrientProtein:
			rec.Protein = n.Value
		case nutrientFat:
			rec.Fat = n.Value
		case nutrientCarbs:
			rec.Carbs = n.Value
		case nutrientFiber:
			rec.Medical.Fiber = n.Value
		case nutrientSugar:
			rec.Medical.Sugar = n.Value
		case nutrientSodium:
			rec.Medical.Sodium = n.Value
		}
	}
	return rec
}
