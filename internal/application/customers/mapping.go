package customers

import (
	"github.com/seu-usuario/crm-clientes/internal/application/dto"
	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	"github.com/seu-usuario/crm-clientes/internal/domain/valueobject"
)

func toResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID.String(),
		PersonType:     string(c.PersonType),
		Name:           c.Name,
		CPF:            c.CPF.String(),
		CNPJ:           c.CNPJ.String(),
		BirthDate:      c.BirthDate,
		FoundationDate: c.FoundationDate,
		Phone:          c.Phone.String(),
		Email:          c.Email.String(),
		Address: dto.AddressPayload{
			ZipCode:      c.Address.ZipCode,
			Street:       c.Address.Street,
			Number:       c.Address.Number,
			Complement:   c.Address.Complement,
			Neighborhood: c.Address.Neighborhood,
			City:         c.Address.City,
			State:        c.Address.State,
		},
		StateRegistration:       c.StateRegistration,
		StateRegistrationExempt: c.StateRegistrationExempt,
		Active:                  c.Active,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

func addressFromPayload(p dto.AddressPayload) (valueobject.Address, error) {
	return valueobject.NewAddress(p.ZipCode, p.Street, p.Number, p.Complement, p.Neighborhood, p.City, p.State)
}
