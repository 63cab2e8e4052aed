package controllers

import (
	"errors"
	"log"
	"net/http"

	"caloriex-backend/config"
	"caloriex-backend/models"
	"caloriex-backend/services"
	"caloriex-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanController struct {
	plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{plans: plans}
}

// POST /plans/generate
func (pc *PlanController) Generate(c *gin.Context) {
	userID := c.GetUint("userID")

	var req services.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	plan, err := pc.plans.Generate(c.Request.Context(), &user, req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidProfile) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "insufficient profile data: set gender, age, weight and height first",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// the computed plan is still returned when the write fails, so a
	// transient storage error never costs the user a generated week
	if err := pc.plans.Save(c.Request.Context(), plan); err != nil {
		log.Printf("plan save failed for user %d: %v", userID, err)
		c.JSON(http.StatusOK, gin.H{"plan": plan, "persist_error": "plan could not be saved, retry later"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// GET /plans
func (pc *PlanController) List(c *gin.Context) {
	userID := c.GetUint("userID")

	plans, err := pc.plans.ListPlans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GET /plans/:id
func (pc *PlanController) Get(c *gin.Context) {
	userID := c.GetUint("userID")

	plan, err := pc.plans.GetPlan(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
