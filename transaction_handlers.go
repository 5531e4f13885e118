package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Brundha-2004/smartspend/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type transactionRequest struct {
	Title       string          `json:"title" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Description string          `json:"description"`
}

// applyTo validates the request and writes its fields onto tx.
func (req *transactionRequest) applyTo(tx *models.Transaction) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return err
	}
	txType, err := models.ParseTransactionType(req.Type)
	if err != nil {
		return err
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", req.Date)
	}
	tx.Title = req.Title
	tx.Amount = req.Amount
	tx.Category = category
	tx.Type = txType
	tx.Date = date
	tx.Description = req.Description
	return nil
}

// createTransactionHandler persists the record first, then runs the budget
// alert evaluation inline. Evaluation problems are logged and never fail the
// write.
func createTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx := models.Transaction{UserID: user.ID}
	if err := req.applyTo(&tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := db.Create(&tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	if err := alerts.Evaluate(user.Email, &tx); err != nil {
		log.Printf("budget alert evaluation failed for user %d: %v", user.ID, err)
	}
	c.JSON(http.StatusCreated, gin.H{"id": tx.ID, "transaction": tx})
}

// listTransactionsHandler returns the user's transactions, optionally
// filtered by date range, category, and amount range. Each filter is
// independently optional.
func listTransactionsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	q := db.Model(&models.Transaction{}).Where("user_id = ?", user.ID)
	if v := c.Query("start_date"); v != "" {
		start, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		q = q.Where("date >= ?", start)
	}
	if v := c.Query("end_date"); v != "" {
		end, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		q = q.Where("date <= ?", end)
	}
	if v := c.Query("category"); v != "" {
		category, err := models.ParseCategory(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		q = q.Where("category = ?", category)
	}
	if v := c.Query("min_amount"); v != "" {
		minAmount, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_amount"})
			return
		}
		q = q.Where("amount >= ?", minAmount)
	}
	if v := c.Query("max_amount"); v != "" {
		maxAmount, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_amount"})
			return
		}
		q = q.Where("amount <= ?", maxAmount)
	}
	var transactions []models.Transaction
	if err := q.Order("date desc, id desc").Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// ownedTransaction loads a transaction and enforces the ownership guard.
func ownedTransaction(c *gin.Context, user *models.User) (*models.Transaction, bool) {
	var tx models.Transaction
	if err := db.First(&tx, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "transaction " + ErrNotFound.Error()})
		return nil, false
	}
	if tx.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": ErrAccessDenied.Error()})
		return nil, false
	}
	return &tx, true
}

func getTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	tx, ok := ownedTransaction(c, user)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tx)
}

func updateTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	tx, ok := ownedTransaction(c, user)
	if !ok {
		return
	}
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.applyTo(tx); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := db.Save(tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction updated successfully", "transaction": tx})
}

func deleteTransactionHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	tx, ok := ownedTransaction(c, user)
	if !ok {
		return
	}
	if err := db.Delete(tx).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted successfully", "id": tx.ID})
}

// totalsHandler sums income and expenses over a date range, defaulting to the
// first of the current month through today.
func totalsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if v := c.Query("start_date"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return
		}
		start = parsed
	}
	if v := c.Query("end_date"); v != "" {
		parsed, err := time.Parse(dateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return
		}
		end = parsed
	}
	totalExpenses, err := sumAmount(db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", user.ID, models.TypeExpense, start, end))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	totalIncome, err := sumAmount(db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND date >= ? AND date <= ?", user.ID, models.TypeIncome, start, end))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_expenses": totalExpenses,
		"total_income":   totalIncome,
		"net_savings":    totalIncome.Sub(totalExpenses),
		"start_date":     start.Format(dateLayout),
		"end_date":       end.Format(dateLayout),
	})
}
