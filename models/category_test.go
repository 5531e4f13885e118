package models

import "testing"

func TestParseCategory(t *testing.T) {
	for _, input := range []string{"FOOD", "food", " Food "} {
		c, err := ParseCategory(input)
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", input, err)
		}
		if c != CategoryFood {
			t.Fatalf("ParseCategory(%q) = %q", input, c)
		}
	}
	if _, err := ParseCategory("GROCERIES"); err == nil {
		t.Fatal("unknown category must be rejected")
	}
	if _, err := ParseCategory(""); err == nil {
		t.Fatal("empty category must be rejected")
	}
}

func TestParseTransactionType(t *testing.T) {
	if typ, err := ParseTransactionType("expense"); err != nil || typ != TypeExpense {
		t.Fatalf("got %q, %v", typ, err)
	}
	if typ, err := ParseTransactionType("INCOME"); err != nil || typ != TypeIncome {
		t.Fatalf("got %q, %v", typ, err)
	}
	if _, err := ParseTransactionType("TRANSFER"); err == nil {
		t.Fatal("unknown type must be rejected")
	}
}
