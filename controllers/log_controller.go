package controllers

import (
	"net/http"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Logs *services.LogService
}

func NewLogController(logs *services.LogService) *LogController {
	return &LogController{Logs: logs}
}

func dateParam(c *gin.Context) string {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return date
}

// GET /log?date=YYYY-MM-DD
func (l *LogController) List(c *gin.Context) {
	entries, err := l.Logs.ListByDate(c.Request.Context(), c.GetUint("userID"), dateParam(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type addEntryInput struct {
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
	FoodID   string  `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

// POST /log
func (l *LogController) Add(c *gin.Context) {
	var input addEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealType, err := models.ParseMealType(input.MealType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := l.Logs.Add(c.Request.Context(), c.GetUint("userID"), input.Date, mealType, input.FoodID, input.Quantity)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /log/:id
func (l *LogController) Delete(c *gin.Context) {
	if err := l.Logs.Delete(c.Request.Context(), c.GetUint("userID"), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /log/totals?date=YYYY-MM-DD
func (l *LogController) Totals(c *gin.Context) {
	totals, err := l.Logs.Totals(c.Request.Context(), c.GetUint("userID"), dateParam(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, totals)
}
