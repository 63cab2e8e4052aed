package controllers

import (
	"context"
	"testing"

	"caloriex-backend/models"
	"caloriex-backend/services"
)

type fixedSource struct {
	name string
	rec  models.FoodRecord
}

func (s *fixedSource) Name() string { return s.name }

func (s *fixedSource) Search(ctx context.Context, term string, limit int) ([]models.FoodRecord, error) {
	return []models.FoodRecord{s.rec}, nil
}

func (s *fixedSource) GetByID(ctx context.Context, id string) (*models.FoodRecord, error) {
	r := s.rec
	r.ID = id
	return &r, nil
}

func (s *fixedSource) Candidates(ctx context.Context, q services.CandidateQuery) ([]models.FoodRecord, error) {
	return []models.FoodRecord{s.rec}, nil
}

func TestNewFoodControllerAliasesTemplateToCustom(t *testing.T) {
	custom := &fixedSource{name: models.SourceCustom}
	fc := NewFoodController(
		&fixedSource{name: models.SourceRegional},
		custom,
		&fixedSource{name: models.SourceInternational},
	)

	// template ids like "t:1" resolve through the custom store, so lookups
	// addressed to "template" must reach the same adapter
	src, ok := fc.sources[models.SourceTemplate]
	if !ok {
		t.Fatal("template source must resolve")
	}
	if src != services.FoodSource(custom) {
		t.Error("template must alias the custom adapter")
	}
}

func TestNewFoodControllerKeepsExplicitTemplateSource(t *testing.T) {
	tpl := &fixedSource{name: models.SourceTemplate}
	fc := NewFoodController(&fixedSource{name: models.SourceCustom}, tpl)

	if fc.sources[models.SourceTemplate] != services.FoodSource(tpl) {
		t.Error("an explicitly registered template source must not be overridden")
	}
}
