package controllers

import (
	"net/http"

	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Water *services.WaterService
}

func NewWaterController(water *services.WaterService) *WaterController {
	return &WaterController{Water: water}
}

// GET /water?date=YYYY-MM-DD
func (w *WaterController) Get(c *gin.Context) {
	date := dateParam(c)
	glasses, err := w.Water.Get(c.Request.Context(), c.GetUint("userID"), date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "glasses": glasses})
}

// PUT /water
func (w *WaterController) Set(c *gin.Context) {
	var input struct {
		Date    string  `json:"date" binding:"required"`
		Glasses float64 `json:"glasses"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intake, err := w.Water.Upsert(c.Request.Context(), c.GetUint("userID"), input.Date, input.Glasses)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, intake)
}
