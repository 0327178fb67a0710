package controllers

import (
	"errors"
	"net/http"

	"github.com/Sorin-PSP/EatWise-sub000/middlewares"
	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"
	"github.com/Sorin-PSP/EatWise-sub000/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods  *services.FoodService
	Images *utils.ImageUploader // nil when S3 is not configured
}

func NewFoodController(foods *services.FoodService, images *utils.ImageUploader) *FoodController {
	return &FoodController{Foods: foods, Images: images}
}

func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// GET /foods
func (f *FoodController) List(c *gin.Context) {
	foods, err := f.Foods.List(c.Request.Context(), c.GetUint("userID"), middlewares.IsAdmin(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

type foodInput struct {
	Name     string  `json:"name" binding:"required"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Serving  float64 `json:"serving" binding:"required"`
	Unit     string  `json:"unit" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Image    string  `json:"image"`
}

// POST /foods
func (f *FoodController) Create(c *gin.Context) {
	var input foodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := models.ParseUnit(input.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := models.ParseCategory(input.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := models.NewFood(input.Name, input.Calories, input.Protein, input.Carbs, input.Fat, input.Fiber, input.Serving, unit, category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food.Image = input.Image

	created, err := f.Foods.Create(c.Request.Context(), c.GetUint("userID"), middlewares.IsAdmin(c), food)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /foods/:id
func (f *FoodController) Update(c *gin.Context) {
	var patch services.FoodPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := f.Foods.Update(c.Request.Context(), c.GetUint("userID"), middlewares.IsAdmin(c), c.Param("id"), patch)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /foods/:id
func (f *FoodController) Delete(c *gin.Context) {
	if err := f.Foods.Delete(c.Request.Context(), c.GetUint("userID"), middlewares.IsAdmin(c), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /foods/:id/image  { "image_base64": "data:image/jpeg;base64,..." }
func (f *FoodController) UploadImage(c *gin.Context) {
	if f.Images == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "image upload not configured"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	id := c.Param("id")
	url, err := f.Images.UploadBase64Image(c.Request.Context(), req.ImageBase64, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := f.Foods.Update(c.Request.Context(), c.GetUint("userID"), middlewares.IsAdmin(c), id, services.FoodPatch{Image: &url})
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
