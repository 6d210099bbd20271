package postgres

import (
	"context"
	"database/sql"

	"bankapi/internal/model"
	"bankapi/internal/repository"
)

// BankAccountPostgres is a PostgreSQL implementation of repository.BankAccountRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BankAccountPostgres struct {
	db *sql.DB
}

// NewBankAccountPostgres creates a new BankAccountPostgres repository.
func NewBankAccountPostgres(db *sql.DB) *BankAccountPostgres {
	return &BankAccountPostgres{db: db}
}

var _ repository.BankAccountRepository = (*BankAccountPostgres)(nil)

// Save inserts a new row when acct.ID is zero and upserts otherwise.
// The stored row is returned in both cases. Upserting advances the id
// sequence past the supplied id so subsequent inserts never collide.
func (r *BankAccountPostgres) Save(ctx context.Context, acct *model.BankAccount) (*model.BankAccount, error) {
	var row *sql.Row
	if acct.ID == 0 {
		const q = `
			INSERT INTO bank_accounts (name, balance)
			VALUES ($1, $2)
			RETURNING id, name, balance
		`
		row = r.db.QueryRowContext(ctx, q, acct.Name, acct.Balance)
	} else {
		const q = `
			INSERT INTO bank_accounts (id, name, balance)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, balance = EXCLUDED.balance
			RETURNING id, name, balance
		`
		row = r.db.QueryRowContext(ctx, q, acct.ID, acct.Name, acct.Balance)
	}

	var out model.BankAccount
	if err := row.Scan(&out.ID, &out.Name, &out.Balance); err != nil {
		return nil, err
	}

	if acct.ID != 0 {
		// Rows written with an explicit id bypass the serial sequence; bump it
		// so a later generated id cannot land on an upserted row. The sequence
		// only ever moves forward.
		const q = `
			SELECT setval(pg_get_serial_sequence('bank_accounts', 'id'),
			              GREATEST(nextval(pg_get_serial_sequence('bank_accounts', 'id')), $1))
		`
		if _, err := r.db.ExecContext(ctx, q, out.ID); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// FindAll returns every bank account ordered by identifier.
func (r *BankAccountPostgres) FindAll(ctx context.Context) ([]model.BankAccount, error) {
	const q = `
		SELECT id, name, balance
		FROM bank_accounts
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]model.BankAccount, 0)
	for rows.Next() {
		var a model.BankAccount
		if err := rows.Scan(&a.ID, &a.Name, &a.Balance); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

// FindByID fetches a single bank account by its ID.
func (r *BankAccountPostgres) FindByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	const q = `
		SELECT id, name, balance
		FROM bank_accounts
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var a model.BankAccount
	if err := row.Scan(&a.ID, &a.Name, &a.Balance); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes a bank account by ID. It does not return an error if the row does not exist.
func (r *BankAccountPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM bank_accounts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	// Rows affected is irrelevant: deletes are idempotent at this layer.
	_, _ = res.RowsAffected()
	return nil
}
