// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
)

// DateLayout is the canonical date format for stored transactions.
// Grouping in insights is by exact string equality on this field.
const DateLayout = "2006-01-02"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// Transaction type constants.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense entry.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // formatted as DateLayout
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
}

// GenerateID derives a stable identifier from the transaction contents,
// used when the source (manual entry, OFX without FITID) provides none.
func (t *Transaction) GenerateID() string {
	data := fmt.Sprintf("%s:%.2f:%s", t.Date, t.Amount, t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)[:16]
}
