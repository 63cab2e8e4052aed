package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"caloriex-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type LogController struct {
	logs  *services.DailyLogService
	goals *services.DailyGoalService
	hub   *services.RealtimeHub
}

func NewLogController(logs *services.DailyLogService, goals *services.DailyGoalService, hub *services.RealtimeHub) *LogController {
	return &LogController{logs: logs, goals: goals, hub: hub}
}

// POST /logs
func (lc *LogController) LogFood(c *gin.Context) {
	userID := c.GetUint("userID")

	var req struct {
		Date        string  `json:"date"` // yyyy-MM-dd, defaults to today
		MealType    string  `json:"meal_type" binding:"required"`
		FoodID      string  `json:"food_id" binding:"required"`
		Source      string  `json:"source" binding:"required"`
		Quantity    float64 `json:"quantity" binding:"required"`
		ServingSize float64 `json:"serving_size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	entry, err := lc.logs.LogFood(c.Request.Context(), userID,
		req.Date, req.MealType, req.FoodID, req.Source, req.Quantity, req.ServingSize)
	if err != nil {
		if errors.Is(err, services.ErrUpstream) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lc.pushTotals(c, userID, req.Date)
	c.JSON(http.StatusCreated, entry)
}

// GET /logs?date=2026-09-01
func (lc *LogController) GetDay(c *gin.Context) {
	userID := c.GetUint("userID")

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use yyyy-MM-dd"})
		return
	}

	entries, err := lc.logs.ListDay(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	goal, err := lc.goals.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals := services.AggregateDay(entries)
	c.JSON(http.StatusOK, gin.H{
		"date":      date,
		"entries":   entries,
		"totals":    totals,
		"remaining": services.Remaining(totals.Day, *goal),
		"progress":  services.ProgressPercent(totals.Day, *goal),
	})
}

// DELETE /logs/:id
func (lc *LogController) DeleteEntry(c *gin.Context) {
	userID := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}
	date := c.Query("date")

	if err := lc.logs.DeleteEntry(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if date != "" {
		lc.pushTotals(c, userID, date)
	}
	c.Status(http.StatusNoContent)
}

func (lc *LogController) pushTotals(c *gin.Context, userID uint, date string) {
	entries, err := lc.logs.ListDay(c.Request.Context(), userID, date)
	if err != nil {
		return // push is best effort
	}
	lc.hub.BroadcastTotals(userID, date, services.AggregateDay(entries))
}
