package mocks

import (
	"context"

	"bankapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) Create(ctx context.Context, dto service.BankAccountDTO) (*service.BankAccountDTO, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BankAccountDTO), args.Error(1)
}

func (m *MockBankAccountService) Update(ctx context.Context, dto service.BankAccountDTO) (*service.BankAccountDTO, error) {
	args := m.Called(ctx, dto)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BankAccountDTO), args.Error(1)
}

func (m *MockBankAccountService) List(ctx context.Context) ([]service.BankAccountDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.BankAccountDTO), args.Error(1)
}

func (m *MockBankAccountService) Get(ctx context.Context, id int64) (*service.BankAccountDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BankAccountDTO), args.Error(1)
}

func (m *MockBankAccountService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
