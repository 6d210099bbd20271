package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres, memory) inside this directory.

import (
	"context"

	"bankapi/internal/model"
)

// BankAccountRepository defines data access for bank accounts using SQL-level operations only.
// No business logic here — strictly persistence operations.
type BankAccountRepository interface {
	// Save stores a bank account. When acct.ID is zero the store assigns a new
	// identifier; otherwise the row is upserted under the given identifier.
	// Returns the stored account (including values set by the store).
	Save(ctx context.Context, acct *model.BankAccount) (*model.BankAccount, error)

	// FindAll returns every bank account.
	FindAll(ctx context.Context) ([]model.BankAccount, error)

	// FindByID returns a bank account by its ID.
	// Absent rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.BankAccount, error)

	// Delete removes a bank account by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id int64) error
}
