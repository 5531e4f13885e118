package models

import (
	"fmt"
	"strings"
)

// Category is a fixed spending classification stored as its string name.
type Category string

const (
	CategoryFood          Category = "FOOD"
	CategoryTransport     Category = "TRANSPORT"
	CategoryEntertainment Category = "ENTERTAINMENT"
	CategoryUtilities     Category = "UTILITIES"
	CategoryHealth        Category = "HEALTH"
	CategoryShopping      Category = "SHOPPING"
	CategoryEducation     Category = "EDUCATION"
	CategoryTravel        Category = "TRAVEL"
	CategorySalary        Category = "SALARY"
	CategoryOther         Category = "OTHER"
)

// Categories lists every valid category.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryEntertainment,
		CategoryUtilities, CategoryHealth, CategoryShopping,
		CategoryEducation, CategoryTravel, CategorySalary, CategoryOther,
	}
}

// ParseCategory accepts a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Categories() {
		if c == v {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// TransactionType marks a record as spending or income.
type TransactionType string

const (
	TypeExpense TransactionType = "EXPENSE"
	TypeIncome  TransactionType = "INCOME"
)

// ParseTransactionType accepts a transaction type case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	if t == TypeExpense || t == TypeIncome {
		return t, nil
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}
