package main

import (
	"net/http"
	"strconv"

	"github.com/Brundha-2004/smartspend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type budgetRequest struct {
	Category string          `json:"category" binding:"required"`
	Month    int             `json:"month" binding:"required"`
	Year     int             `json:"year" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
}

// createBudgetHandler enforces one budget per (user, category, month, year).
// The existence check gives a friendly conflict message; the composite unique
// index catches concurrent creators that race past it.
func createBudgetHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Month < 1 || req.Month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}
	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}
	var count int64
	db.Model(&models.Budget{}).
		Where("user_id = ? AND category = ? AND month = ? AND year = ?", user.ID, category, req.Month, req.Year).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": ErrDuplicateBudget.Error()})
		return
	}
	budget := models.Budget{
		UserID:   user.ID,
		Category: category,
		Month:    req.Month,
		Year:     req.Year,
		Amount:   req.Amount,
	}
	if err := db.Create(&budget).Error; err != nil {
		if isUniqueConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": ErrDuplicateBudget.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": budget.ID, "budget": budget})
}

// listBudgetsHandler returns the user's budgets, optionally narrowed to one
// period with month and year query params.
func listBudgetsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Model(&models.Budget{}).Where("user_id = ?", user.ID)
	if v := c.Query("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
			return
		}
		q = q.Where("month = ?", month)
	}
	if v := c.Query("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		q = q.Where("year = ?", year)
	}
	var budgets []models.Budget
	if err := q.Order("year desc, month desc, id asc").Find(&budgets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, budgets)
}

func ownedBudget(c *gin.Context, user *models.User) (*models.Budget, bool) {
	var budget models.Budget
	if err := db.First(&budget, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "budget " + ErrNotFound.Error()})
		return nil, false
	}
	if budget.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": ErrAccessDenied.Error()})
		return nil, false
	}
	return &budget, true
}

func getBudgetHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	budget, ok := ownedBudget(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, budget)
}

// updateBudgetHandler changes only the amount; period and category are fixed
// for the life of the budget.
func updateBudgetHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	budget, ok := ownedBudget(c, user)
	if !ok {
		return
	}
	var req struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}
	budget.Amount = req.Amount
	if err := db.Save(budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "budget updated successfully", "budget": budget})
}

func deleteBudgetHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	budget, ok := ownedBudget(c, user)
	if !ok {
		return
	}
	if err := db.Delete(budget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "budget deleted successfully", "id": budget.ID})
}
