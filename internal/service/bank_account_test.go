package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"bankapi/internal/model"
	repoMocks "bankapi/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func idPtr(v int64) *int64 { return &v }

func TestBankAccountService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		dto        BankAccountDTO
		setupMocks func(mRepo *repoMocks.MockBankAccountRepository)
		wantErr    error
		checkRes   func(t *testing.T, res *BankAccountDTO)
	}{
		{
			name: "happy path",
			dto:  BankAccountDTO{Name: "checking", Balance: decimal.NewFromInt(100)},
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("Save", ctx, mock.MatchedBy(func(acct *model.BankAccount) bool {
					return acct.ID == 0 && acct.Name == "checking" && acct.Balance.Equal(decimal.NewFromInt(100))
				})).Return(&model.BankAccount{ID: 1, Name: "checking", Balance: decimal.NewFromInt(100)}, nil)
			},
			checkRes: func(t *testing.T, res *BankAccountDTO) {
				assert.NotNil(t, res.ID)
				assert.Equal(t, int64(1), *res.ID)
				assert.Equal(t, "checking", res.Name)
			},
		},
		{
			name:       "validation - id already set",
			dto:        BankAccountDTO{ID: idPtr(7), Name: "checking"},
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {},
			wantErr:    ErrIDExists,
		},
		{
			name: "repository error",
			dto:  BankAccountDTO{Name: "checking"},
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("Save", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBankAccountRepository)
			svc := NewBankAccountService(mRepo, NewBankAccountMapper())

			tt.setupMocks(mRepo)

			res, err := svc.Create(ctx, tt.dto)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDExists) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBankAccountService_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		dto        BankAccountDTO
		setupMocks func(mRepo *repoMocks.MockBankAccountRepository)
		wantErr    error
		checkRes   func(t *testing.T, res *BankAccountDTO)
	}{
		{
			name: "happy path",
			dto:  BankAccountDTO{ID: idPtr(5), Name: "savings"},
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("Save", ctx, mock.MatchedBy(func(acct *model.BankAccount) bool {
					return acct.ID == 5 && acct.Name == "savings"
				})).Return(&model.BankAccount{ID: 5, Name: "savings"}, nil)
			},
			checkRes: func(t *testing.T, res *BankAccountDTO) {
				assert.NotNil(t, res.ID)
				assert.Equal(t, int64(5), *res.ID)
			},
		},
		{
			name:       "validation - missing id",
			dto:        BankAccountDTO{Name: "savings"},
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "repository error",
			dto:  BankAccountDTO{ID: idPtr(5)},
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("Save", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBankAccountRepository)
			svc := NewBankAccountService(mRepo, NewBankAccountMapper())

			tt.setupMocks(mRepo)

			res, err := svc.Update(ctx, tt.dto)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBankAccountService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockBankAccountRepository)
		wantErr    error
		checkRes   func(t *testing.T, res []BankAccountDTO)
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("FindAll", ctx).Return([]model.BankAccount{{ID: 1}, {ID: 2}}, nil)
			},
			checkRes: func(t *testing.T, res []BankAccountDTO) {
				assert.Len(t, res, 2)
				assert.Equal(t, int64(1), *res[0].ID)
				assert.Equal(t, int64(2), *res[1].ID)
			},
		},
		{
			name: "empty store",
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("FindAll", ctx).Return([]model.BankAccount{}, nil)
			},
			checkRes: func(t *testing.T, res []BankAccountDTO) {
				assert.Len(t, res, 0)
			},
		},
		{
			name: "repository error",
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("FindAll", ctx).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBankAccountRepository)
			svc := NewBankAccountService(mRepo, NewBankAccountMapper())

			tt.setupMocks(mRepo)

			res, err := svc.List(ctx)

			if tt.wantErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBankAccountService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockBankAccountRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   4,
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("FindByID", ctx, int64(4)).Return(&model.BankAccount{ID: 4, Name: "checking"}, nil)
			},
		},
		{
			name: "not found - mapping sql.ErrNoRows",
			id:   42,
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("FindByID", ctx, int64(42)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "generic repository error",
			id:   4,
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("FindByID", ctx, int64(4)).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBankAccountRepository)
			svc := NewBankAccountService(mRepo, NewBankAccountMapper())

			tt.setupMocks(mRepo)

			res, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
				}
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, res)
				assert.Equal(t, tt.id, *res.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBankAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		setupMocks func(mRepo *repoMocks.MockBankAccountRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   3,
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("Delete", ctx, int64(3)).Return(nil)
			},
		},
		{
			name: "repository error",
			id:   3,
			setupMocks: func(mRepo *repoMocks.MockBankAccountRepository) {
				mRepo.On("Delete", ctx, int64(3)).Return(errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockBankAccountRepository)
			svc := NewBankAccountService(mRepo, NewBankAccountMapper())

			tt.setupMocks(mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestBankAccountMapper(t *testing.T) {
	mapper := NewBankAccountMapper()

	t.Run("dto without id maps to zero-id entity", func(t *testing.T) {
		entity := mapper.ToEntity(BankAccountDTO{Name: "checking", Balance: decimal.NewFromInt(50)})

		assert.Equal(t, int64(0), entity.ID)
		assert.Equal(t, "checking", entity.Name)
		assert.True(t, entity.Balance.Equal(decimal.NewFromInt(50)))
	})

	t.Run("dto with id keeps it", func(t *testing.T) {
		entity := mapper.ToEntity(BankAccountDTO{ID: idPtr(8), Name: "savings"})

		assert.Equal(t, int64(8), entity.ID)
	})

	t.Run("entity round trip populates the id", func(t *testing.T) {
		dto := mapper.ToDTO(model.BankAccount{ID: 3, Name: "checking"})

		assert.NotNil(t, dto.ID)
		assert.Equal(t, int64(3), *dto.ID)
	})

	t.Run("slice mapping preserves order", func(t *testing.T) {
		dtos := mapper.ToDTOs([]model.BankAccount{{ID: 1}, {ID: 2}})

		assert.Len(t, dtos, 2)
		assert.Equal(t, int64(1), *dtos[0].ID)
		assert.Equal(t, int64(2), *dtos[1].ID)
	})
}
