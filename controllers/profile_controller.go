package controllers

import (
	"net/http"

	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// GET /profile
func (p *ProfileController) Get(c *gin.Context) {
	profile, err := p.Profiles.Get(c.Request.Context(), c.GetUint("userID"), c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PUT /profile
func (p *ProfileController) Update(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := p.Profiles.Update(c.Request.Context(), c.GetUint("userID"), c.GetString("email"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GET /profile/suggest-goals
func (p *ProfileController) SuggestGoals(c *gin.Context) {
	suggestion, err := p.Profiles.SuggestGoals(c.Request.Context(), c.GetUint("userID"), c.GetString("email"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
