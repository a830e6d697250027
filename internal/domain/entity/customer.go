package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/internal/domain/event"
	"github.com/seu-usuario/crm-clientes/internal/domain/valueobject"
)

// PersonType discriminante imutável do cliente, escolhido na criação.
type PersonType string

const (
	NaturalPerson PersonType = "natural_person" // pessoa física (CPF)
	LegalEntity   PersonType = "legal_entity"   // pessoa jurídica (CNPJ)
)

// Customer agregado raiz do cadastro. Invariantes:
//   - nome obrigatório;
//   - pessoa física: CPF válido + data de nascimento com idade >= 18;
//   - pessoa jurídica: CNPJ válido + data de fundação + inscrição estadual
//     preenchida ou marcada como isenta.
//
// Toda transição de estado emite exatamente um evento de domínio, acumulado
// em events até o caso de uso persistir e chamar ClearEvents.
type Customer struct {
	ID                      uuid.UUID
	PersonType              PersonType
	Name                    string
	CPF                     valueobject.CPF  // só pessoa física
	CNPJ                    valueobject.CNPJ // só pessoa jurídica
	BirthDate               *time.Time
	FoundationDate          *time.Time
	Phone                   valueobject.Phone
	Email                   valueobject.Email
	Address                 valueobject.Address
	StateRegistration       *string
	StateRegistrationExempt bool
	Active                  bool
	CreatedAt               time.Time
	UpdatedAt               *time.Time

	events []event.DomainEvent
}

// MinimumAge idade mínima para cadastro de pessoa física.
const MinimumAge = 18

// NewNaturalPerson fábrica de pessoa física. Valida todos os objetos de valor
// e as invariantes antes de devolver o agregado; emite CustomerCreated.
func NewNaturalPerson(name, cpf string, birthDate time.Time, phone, email string, address valueobject.Address) (*Customer, error) {
	cpfVO, err := valueobject.NewCPF(cpf)
	if err != nil {
		return nil, err
	}
	phoneVO, err := valueobject.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		ID:         uuid.New(),
		PersonType: NaturalPerson,
		Name:       name,
		CPF:        cpfVO,
		BirthDate:  &birthDate,
		Phone:      phoneVO,
		Email:      emailVO,
		Address:    address,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.record(event.NewCustomerCreated(c.ID, c.Name, string(c.PersonType)))
	return c, nil
}

// NewLegalEntity fábrica de pessoa jurídica; emite CustomerCreated.
func NewLegalEntity(name, cnpj string, foundationDate time.Time, phone, email string, address valueobject.Address, stateRegistration *string, exempt bool) (*Customer, error) {
	cnpjVO, err := valueobject.NewCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	phoneVO, err := valueobject.NewPhone(phone)
	if err != nil {
		return nil, err
	}
	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	c := &Customer{
		ID:                      uuid.New(),
		PersonType:              LegalEntity,
		Name:                    name,
		CNPJ:                    cnpjVO,
		FoundationDate:          &foundationDate,
		Phone:                   phoneVO,
		Email:                   emailVO,
		Address:                 address,
		StateRegistration:       stateRegistration,
		StateRegistrationExempt: exempt,
		Active:                  true,
		CreatedAt:               time.Now().UTC(),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.record(event.NewCustomerCreated(c.ID, c.Name, string(c.PersonType)))
	return c, nil
}

// Update aplica os campos mutáveis e revalida as invariantes. Para pessoa
// jurídica, inscrição estadual e isenção são substituídas por inteiro
// (isenção ausente vale false). A mutação só é efetivada se a combinação
// nova for consistente; emite CustomerUpdated com retrato antes/depois.
func (c *Customer) Update(name, phone, email string, address valueobject.Address, stateRegistration *string, exempt *bool) error {
	phoneVO, err := valueobject.NewPhone(phone)
	if err != nil {
		return err
	}
	emailVO, err := valueobject.NewEmail(email)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	next := *c
	next.Name = name
	next.Phone = phoneVO
	next.Email = emailVO
	next.Address = address
	next.UpdatedAt = &now
	if c.PersonType == LegalEntity {
		next.StateRegistration = stateRegistration
		next.StateRegistrationExempt = exempt != nil && *exempt
	}
	if err := next.validate(); err != nil {
		return err
	}

	oldData := c.snapshot()
	*c = next
	c.record(event.NewCustomerUpdated(c.ID, c.Name, string(c.PersonType), oldData, c.snapshot()))
	return nil
}

// Deactivate marca o cliente como inativo. O guarda de idempotência
// ("cliente já está inativo") fica no caso de uso, não aqui.
func (c *Customer) Deactivate() {
	now := time.Now().UTC()
	c.Active = false
	c.UpdatedAt = &now
	c.record(event.NewCustomerDeactivated(c.ID, c.Name, string(c.PersonType)))
}

// Activate reativa o cliente. Ativação e desativação são livremente reversíveis.
func (c *Customer) Activate() {
	now := time.Now().UTC()
	c.Active = true
	c.UpdatedAt = &now
	c.record(event.NewCustomerActivated(c.ID, c.Name, string(c.PersonType)))
}

// PendingEvents devolve os eventos ainda não persistidos, na ordem de emissão.
func (c *Customer) PendingEvents() []event.DomainEvent { return c.events }

// ClearEvents limpa o buffer após o caso de uso anexar tudo ao event store.
func (c *Customer) ClearEvents() { c.events = nil }

func (c *Customer) record(e event.DomainEvent) { c.events = append(c.events, e) }

func (c *Customer) validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.Validation("nome não pode ser vazio")
	}
	switch c.PersonType {
	case NaturalPerson:
		if c.CPF.IsZero() {
			return domain.Validation("CPF é obrigatório para pessoa física")
		}
		if c.BirthDate == nil {
			return domain.Validation("data de nascimento é obrigatória para pessoa física")
		}
		if ageAt(*c.BirthDate, time.Now().UTC()) < MinimumAge {
			return domain.Validation("cliente deve ter no mínimo 18 anos")
		}
	case LegalEntity:
		if c.CNPJ.IsZero() {
			return domain.Validation("CNPJ é obrigatório para pessoa jurídica")
		}
		if c.FoundationDate == nil {
			return domain.Validation("data de fundação é obrigatória para pessoa jurídica")
		}
		hasIE := c.StateRegistration != nil && strings.TrimSpace(*c.StateRegistration) != ""
		if !hasIE && !c.StateRegistrationExempt {
			return domain.Validation("inscrição estadual é obrigatória ou deve ser marcada como isenta")
		}
	default:
		return domain.Validation("tipo de pessoa inválido")
	}
	return nil
}

// ageAt idade completa na data de referência (aniversário ainda não ocorrido
// desconta um ano).
func ageAt(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if birth.AddDate(age, 0, 0).After(ref) {
		age--
	}
	return age
}

// snapshot retrato JSON dos campos mutáveis, usado no evento de atualização.
func (c *Customer) snapshot() string {
	data, _ := json.Marshal(struct {
		Name                    string              `json:"name"`
		Phone                   string              `json:"phone"`
		Email                   string              `json:"email"`
		Address                 valueobject.Address `json:"address"`
		StateRegistration       *string             `json:"state_registration"`
		StateRegistrationExempt bool                `json:"state_registration_exempt"`
	}{
		Name:                    c.Name,
		Phone:                   c.Phone.String(),
		Email:                   c.Email.String(),
		Address:                 c.Address,
		StateRegistration:       c.StateRegistration,
		StateRegistrationExempt: c.StateRegistrationExempt,
	})
	return string(data)
}
