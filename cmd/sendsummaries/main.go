// Command sendsummaries dispatches the monthly summary email to every
// verified user. Run it from cron shortly after month end:
//
//	go run ./cmd/sendsummaries            # previous calendar month
//	go run ./cmd/sendsummaries -month 6 -year 2024
package main

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/Brundha-2004/smartspend/models"
	"github.com/Brundha-2004/smartspend/pkg/mailer"
	"github.com/Brundha-2004/smartspend/pkg/monthsum"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	month := flag.Int("month", 0, "month to summarize (1-12, default: previous month)")
	year := flag.Int("year", 0, "year to summarize (default: year of previous month)")
	flag.Parse()

	if *month == 0 || *year == 0 {
		// Last day of the previous month; AddDate(0, -1, 0) would normalize
		// Mar 31 back into March.
		now := time.Now().UTC()
		prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		if *month == 0 {
			*month = int(prev.Month())
		}
		if *year == 0 {
			*year = prev.Year()
		}
	}
	if *month < 1 || *month > 12 {
		log.Fatalf("month out of range: %d", *month)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded, using environment as-is: %v", err)
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	mail, err := mailer.New(mailer.Config{
		Enabled:  envBool("NOTIFY_ENABLED", false),
		Host:     env("SMTP_HOST", "localhost"),
		Port:     envInt("SMTP_PORT", 587),
		Username: env("SMTP_USERNAME", ""),
		Password: env("SMTP_PASSWORD", ""),
		From:     env("MAIL_FROM", "smartspend@localhost"),
		BaseURL:  env("BASE_URL", "http://localhost:8082"),
	})
	if err != nil {
		log.Fatalf("failed to build mailer: %v", err)
	}

	store := gormStore{db: db}
	aggregator := monthsum.New(store, store)

	var users []models.User
	if err := db.Where("enabled = ?", true).Order("id asc").Find(&users).Error; err != nil {
		log.Fatalf("failed to list users: %v", err)
	}

	sent, failed := 0, 0
	for _, user := range users {
		report, err := aggregator.Summarize(user.ID, *month, *year)
		if err != nil {
			log.Printf("summary failed for user %d: %v", user.ID, err)
			failed++
			continue
		}
		if err := mail.SendMonthlySummary(user.Email, report); err != nil {
			log.Printf("summary email failed for %s: %v", user.Email, err)
			failed++
			continue
		}
		sent++
	}
	log.Printf("monthly summaries for %d/%d: sent=%d failed=%d", *month, *year, sent, failed)
}

// gormStore satisfies the aggregator's read interfaces with its own handle.
type gormStore struct{ db *gorm.DB }

func (s gormStore) TransactionsInRange(userID uint, start, end time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date asc, id asc").
		Find(&transactions).Error
	return transactions, err
}

func (s gormStore) ExpenseTotal(userID uint, category models.Category, month, year int) (decimal.Decimal, error) {
	start, end := monthsum.PeriodBounds(month, year)
	var row struct {
		Total decimal.Decimal
	}
	err := s.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND type = ? AND category = ? AND date >= ? AND date <= ?",
			userID, models.TypeExpense, category, start, end).
		Scan(&row).Error
	return row.Total, err
}

func (s gormStore) BudgetsForPeriod(userID uint, month, year int) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Order("id asc").
		Find(&budgets).Error
	return budgets, err
}

func env(key, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	switch env(key, "") {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}
