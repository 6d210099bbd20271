package mocks

import (
	"context"

	"bankapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) Save(ctx context.Context, acct *model.BankAccount) (*model.BankAccount, error) {
	args := m.Called(ctx, acct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindAll(ctx context.Context) ([]model.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) FindByID(ctx context.Context, id int64) (*model.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
