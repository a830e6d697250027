package dto

import "time"

// AddressPayload endereço nas requisições e respostas.
type AddressPayload struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CreateNaturalPersonRequest POST /api/customers/natural-person.
type CreateNaturalPersonRequest struct {
	Name      string         `json:"name"`
	CPF       string         `json:"cpf"`
	BirthDate time.Time      `json:"birth_date"`
	Phone     string         `json:"phone"`
	Email     string         `json:"email"`
	Address   AddressPayload `json:"address"`
}

// CreateLegalEntityRequest POST /api/customers/legal-entity.
type CreateLegalEntityRequest struct {
	Name                    string         `json:"name"`
	CNPJ                    string         `json:"cnpj"`
	FoundationDate          time.Time      `json:"foundation_date"`
	Phone                   string         `json:"phone"`
	Email                   string         `json:"email"`
	Address                 AddressPayload `json:"address"`
	StateRegistration       *string        `json:"state_registration"`
	StateRegistrationExempt bool           `json:"state_registration_exempt"`
}

// UpdateCustomerRequest PUT /api/customers/:id. Para pessoa jurídica,
// state_registration e state_registration_exempt substituem os valores atuais
// por inteiro (ausentes = nulo/false).
type UpdateCustomerRequest struct {
	Name                    string         `json:"name"`
	Phone                   string         `json:"phone"`
	Email                   string         `json:"email"`
	Address                 AddressPayload `json:"address"`
	StateRegistration       *string        `json:"state_registration"`
	StateRegistrationExempt *bool          `json:"state_registration_exempt"`
}

// CustomerResponse projeção plana do agregado devolvida pela API.
type CustomerResponse struct {
	ID                      string         `json:"id"`
	PersonType              string         `json:"person_type"`
	Name                    string         `json:"name"`
	CPF                     string         `json:"cpf,omitempty"`
	CNPJ                    string         `json:"cnpj,omitempty"`
	BirthDate               *time.Time     `json:"birth_date,omitempty"`
	FoundationDate          *time.Time     `json:"foundation_date,omitempty"`
	Phone                   string         `json:"phone"`
	Email                   string         `json:"email"`
	Address                 AddressPayload `json:"address"`
	StateRegistration       *string        `json:"state_registration"`
	StateRegistrationExempt bool           `json:"state_registration_exempt"`
	Active                  bool           `json:"active"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               *time.Time     `json:"updated_at,omitempty"`
}
