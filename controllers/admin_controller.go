package controllers

import (
	"net/http"
	"strconv"

	"github.com/Sorin-PSP/EatWise-sub000/models"
	"github.com/Sorin-PSP/EatWise-sub000/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admin *services.AdminService
	Foods *services.FoodService
}

func NewAdminController(admin *services.AdminService, foods *services.FoodService) *AdminController {
	return &AdminController{Admin: admin, Foods: foods}
}

// GET /admin/users
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.Admin.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// PATCH /admin/users/:id  { "disabled": true }
func (a *AdminController) SetUserDisabled(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input struct {
		Disabled *bool `json:"disabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.Admin.SetUserDisabled(c.Request.Context(), uint(id), *input.Disabled); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /admin/foods/pending
func (a *AdminController) PendingFoods(c *gin.Context) {
	foods, err := a.Foods.Pending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /admin/foods/:id/approve
func (a *AdminController) ApproveFood(c *gin.Context) {
	food, err := a.Foods.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

// GET /admin/payments?status=pending
func (a *AdminController) ListPayments(c *gin.Context) {
	payments, err := a.Admin.ListPayments(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// POST /admin/payments
func (a *AdminController) RecordPayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := a.Admin.RecordPayment(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// PATCH /admin/payments/:id  { "status": "paid" }
func (a *AdminController) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment id"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := a.Admin.UpdatePaymentStatus(c.Request.Context(), uint(id), input.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
