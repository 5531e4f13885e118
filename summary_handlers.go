package main

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// summaryPeriod reads month/year query params, defaulting to the current
// calendar month.
func summaryPeriod(c *gin.Context) (int, int, bool) {
	now := time.Now().UTC()
	month, year := int(now.Month()), now.Year()
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
			return 0, 0, false
		}
		month = parsed
	}
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return 0, 0, false
		}
		year = parsed
	}
	return month, year, true
}

func getSummaryHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, ok := summaryPeriod(c)
	if !ok {
		return
	}
	report, err := summaries.Summarize(user.ID, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "summary failed"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// sendSummaryHandler computes the report and hands it to the notification
// gateway. Dispatch failures are logged, not surfaced.
func sendSummaryHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	month, year, ok := summaryPeriod(c)
	if !ok {
		return
	}
	report, err := summaries.Summarize(user.ID, month, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "summary failed"})
		return
	}
	if err := mail.SendMonthlySummary(user.Email, report); err != nil {
		log.Printf("monthly summary email failed for %s: %v", user.Email, err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "summary dispatched", "month": month, "year": year})
}
