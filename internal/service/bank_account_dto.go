package service

import "github.com/shopspring/decimal"

// BankAccountDTO is the wire representation of a bank account, distinct from
// its persisted form. The identifier is absent (nil) until the store assigns
// one; clients must not supply it on creation.
type BankAccountDTO struct {
	ID      *int64          `json:"id,omitempty"`
	Name    string          `json:"name" validate:"omitempty,max=255"`
	Balance decimal.Decimal `json:"balance"`
}
