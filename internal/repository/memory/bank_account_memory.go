package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"bankapi/internal/model"
	"bankapi/internal/repository"
)

// BankAccountMemory is an in-memory implementation of repository.BankAccountRepository.
// It is safe for concurrent use and assigns sequential identifiers starting at 1,
// matching the behavior of the Postgres adapter's BIGSERIAL column. Intended for
// tests and for running the API without a database.
type BankAccountMemory struct {
	mu     sync.RWMutex
	byID   map[int64]model.BankAccount
	nextID int64
}

// NewBankAccountMemory creates an empty in-memory repository.
func NewBankAccountMemory() *BankAccountMemory {
	return &BankAccountMemory{byID: make(map[int64]model.BankAccount)}
}

var _ repository.BankAccountRepository = (*BankAccountMemory)(nil)

// Save assigns the next identifier when acct.ID is zero and upserts otherwise.
func (r *BankAccountMemory) Save(ctx context.Context, acct *model.BankAccount) (*model.BankAccount, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *acct
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else if stored.ID > r.nextID {
		// Keep the sequence ahead of explicitly supplied identifiers so later
		// inserts cannot collide with an upserted row.
		r.nextID = stored.ID
	}
	r.byID[stored.ID] = stored

	out := stored
	return &out, nil
}

// FindAll returns every stored account ordered by identifier.
func (r *BankAccountMemory) FindAll(ctx context.Context) ([]model.BankAccount, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]model.BankAccount, 0, len(r.byID))
	for _, a := range r.byID {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// FindByID returns the stored account or sql.ErrNoRows, keeping the repository
// contract identical across adapters.
func (r *BankAccountMemory) FindByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := a
	return &out, nil
}

// Delete removes the account if present. Absent rows are not an error.
func (r *BankAccountMemory) Delete(ctx context.Context, id int64) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byID, id)
	return nil
}
