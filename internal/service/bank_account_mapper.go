package service

import "bankapi/internal/model"

// BankAccountMapper converts between the wire DTO and the persisted entity.
// It is a dependency of the service so a different wire shape can be swapped
// in at composition time.
type BankAccountMapper interface {
	ToEntity(dto BankAccountDTO) model.BankAccount
	ToDTO(entity model.BankAccount) BankAccountDTO
	ToDTOs(entities []model.BankAccount) []BankAccountDTO
}

type bankAccountMapper struct{}

// NewBankAccountMapper constructs the default mapper.
func NewBankAccountMapper() BankAccountMapper {
	return bankAccountMapper{}
}

func (bankAccountMapper) ToEntity(dto BankAccountDTO) model.BankAccount {
	acct := model.BankAccount{
		Name:    dto.Name,
		Balance: dto.Balance,
	}
	if dto.ID != nil {
		acct.ID = *dto.ID
	}
	return acct
}

func (bankAccountMapper) ToDTO(entity model.BankAccount) BankAccountDTO {
	id := entity.ID
	return BankAccountDTO{
		ID:      &id,
		Name:    entity.Name,
		Balance: entity.Balance,
	}
}

func (m bankAccountMapper) ToDTOs(entities []model.BankAccount) []BankAccountDTO {
	dtos := make([]BankAccountDTO, 0, len(entities))
	for _, e := range entities {
		dtos = append(dtos, m.ToDTO(e))
	}
	return dtos
}
