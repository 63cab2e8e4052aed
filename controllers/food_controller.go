package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"caloriex-backend/models"
	"caloriex-backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	sources map[string]services.FoodSource
}

func NewFoodController(sources ...services.FoodSource) *FoodController {
	m := make(map[string]services.FoodSource, len(sources))
	for _, src := range sources {
		m[src.Name()] = src
	}
	// template records resolve through the custom store, same as logging
	if custom, ok := m[models.SourceCustom]; ok {
		if _, taken := m[models.SourceTemplate]; !taken {
			m[models.SourceTemplate] = custom
		}
	}
	return &FoodController{sources: m}
}

// GET /food/search?q=banana&source=regional&limit=20
func (fc *FoodController) Search(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query param 'q' is required"})
		return
	}

	sourceName := c.DefaultQuery("source", models.SourceRegional)
	src, ok := fc.sources[sourceName]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown source " + sourceName})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	records, err := src.Search(c.Request.Context(), term, limit)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// no matches is a valid, empty result — not an error
	c.JSON(http.StatusOK, records)
}

// GET /food/:source/:id
func (fc *FoodController) GetByID(c *gin.Context) {
	src, ok := fc.sources[c.Param("source")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown source " + c.Param("source")})
		return
	}

	rec, err := src.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
