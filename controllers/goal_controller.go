package controllers

import (
	"net/http"
	"time"

	"caloriex-backend/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	goals *services.DailyGoalService
	logs  *services.DailyLogService
}

func NewGoalController(goals *services.DailyGoalService, logs *services.DailyLogService) *GoalController {
	return &GoalController{goals: goals, logs: logs}
}

// GET /goals — goals plus today's consumption against them
func (gc *GoalController) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	goal, err := gc.goals.GetOrCreate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	today := time.Now().Format("2006-01-02")
	entries, err := gc.logs.ListDay(c.Request.Context(), userID, today)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	totals := services.AggregateDay(entries)
	c.JSON(http.StatusOK, gin.H{
		"goals":     goal,
		"consumed":  totals.Day,
		"remaining": services.Remaining(totals.Day, *goal),
		"progress":  services.ProgressPercent(totals.Day, *goal),
	})
}

// PATCH /goals — partial merge, only supplied fields change
func (gc *GoalController) Update(c *gin.Context) {
	userID := c.GetUint("userID")

	var patch services.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.goals.Update(c.Request.Context(), userID, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
