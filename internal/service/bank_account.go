package service

import (
	"context"
	"database/sql"
	"errors"

	"bankapi/internal/repository"
)

var (
	ErrIDExists   = errors.New("a new bankAccount cannot already have an ID")
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("bankAccount not found")
)

// BankAccountService defines the use cases for managing bank accounts.
type BankAccountService interface {
	// Create stores a new bank account. The DTO must not carry an identifier;
	// ErrIDExists is returned when it does.
	Create(ctx context.Context, dto BankAccountDTO) (*BankAccountDTO, error)

	// Update upserts an existing bank account under the identifier the DTO
	// carries. ErrIDRequired is returned when the identifier is absent; the
	// HTTP layer routes identifier-less payloads to Create instead.
	Update(ctx context.Context, dto BankAccountDTO) (*BankAccountDTO, error)

	// List returns all bank accounts. No pagination: the scaffold exposes the
	// full collection.
	List(ctx context.Context) ([]BankAccountDTO, error)

	// Get returns a single bank account by its ID.
	Get(ctx context.Context, id int64) (*BankAccountDTO, error)

	// Delete removes a bank account by ID. Deleting an absent account is not
	// an error.
	Delete(ctx context.Context, id int64) error
}

// bankAccountService is a concrete implementation of BankAccountService.
type bankAccountService struct {
	repo   repository.BankAccountRepository
	mapper BankAccountMapper
}

// NewBankAccountService constructs a new BankAccountService.
func NewBankAccountService(repo repository.BankAccountRepository, mapper BankAccountMapper) BankAccountService {
	return &bankAccountService{repo: repo, mapper: mapper}
}

func (s *bankAccountService) Create(ctx context.Context, dto BankAccountDTO) (*BankAccountDTO, error) {
	if dto.ID != nil {
		return nil, ErrIDExists
	}
	entity := s.mapper.ToEntity(dto)
	stored, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, err
	}
	out := s.mapper.ToDTO(*stored)
	return &out, nil
}

func (s *bankAccountService) Update(ctx context.Context, dto BankAccountDTO) (*BankAccountDTO, error) {
	if dto.ID == nil {
		return nil, ErrIDRequired
	}
	entity := s.mapper.ToEntity(dto)
	stored, err := s.repo.Save(ctx, &entity)
	if err != nil {
		return nil, err
	}
	out := s.mapper.ToDTO(*stored)
	return &out, nil
}

func (s *bankAccountService) List(ctx context.Context) ([]BankAccountDTO, error) {
	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToDTOs(accounts), nil
}

// Get returns a bank account by ID, translating absent rows to ErrNotFound.
func (s *bankAccountService) Get(ctx context.Context, id int64) (*BankAccountDTO, error) {
	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out := s.mapper.ToDTO(*acct)
	return &out, nil
}

// Delete is unconditional: the repository contract makes missing rows a no-op.
func (s *bankAccountService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
