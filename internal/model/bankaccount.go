package model

// Package model contains domain models/data structures.
// Keep it minimal for the scaffold; no business logic here.

import "github.com/shopspring/decimal"

// BankAccount is the persisted form of a bank account.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type BankAccount struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}
