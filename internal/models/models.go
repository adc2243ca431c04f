// Package models defines the core data types shared across the application:
// accounts, transactions, and the dataset that groups them.
package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account represents a single bank account. Only ID and Label are meaningful
// to the query engine; Currency is carried through for display.
type Account struct {
	ID       string `yaml:"id"`
	Label    string `yaml:"label"`
	Currency string `yaml:"currency"`
}

// Transaction represents a single dated financial movement.
type Transaction struct {
	Date     string `yaml:"date"`               // Booking date, e.g. "2023-01-15" or "2023-01-15 14:30:00"
	RDate    string `yaml:"rdate,omitempty"`    // Value date as recorded by the bank
	Label    string `yaml:"label"`              // Display label
	Raw      string `yaml:"raw"`                // Free-text bank record, matched against category rules
	Category string `yaml:"category,omitempty"` // Pre-assigned category, if any
	Amount   string `yaml:"amount"`             // Signed decimal amount as a string
}

// Dataset holds every account and its transactions, keyed by account ID.
// It is treated as an immutable snapshot: query functions never modify it,
// and a reload replaces it wholesale.
type Dataset struct {
	Accounts     []Account                `yaml:"accounts"`
	Transactions map[string][]Transaction `yaml:"transactions"`
}

// Account looks up an account by its ID.
func (d *Dataset) Account(id string) (Account, bool) {
	for _, a := range d.Accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// AllTransactions returns the union of every account's transactions.
// Accounts with no recorded transactions contribute nothing.
func (d *Dataset) AllTransactions() []Transaction {
	var all []Transaction
	for _, a := range d.Accounts {
		txs := d.Transactions[a.ID]
		if len(txs) == 0 {
			continue
		}
		all = append(all, txs...)
	}
	return all
}

// ParseAmount parses a string amount to decimal.Decimal.
// Returns decimal.Zero when the string is not a valid decimal number.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", ".")
	amount = strings.ReplaceAll(amount, " ", "")
	// Remove thousand separators
	amount = strings.ReplaceAll(amount, "'", "")

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}

// AmountDecimal returns the transaction amount as a decimal value.
func (t *Transaction) AmountDecimal() decimal.Decimal {
	return ParseAmount(t.Amount)
}
