// Package event define os eventos de domínio do ciclo de vida do cliente.
// Eventos são fatos imutáveis: cada transição do agregado emite exatamente um,
// que é anexado ao event store após a persistência do estado.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Tags registrados no event store. Novos tipos entram aqui e no registry do
// codec; registros com tag desconhecido são pulados na leitura.
const (
	TypeCustomerCreated     = "customer.created"
	TypeCustomerUpdated     = "customer.updated"
	TypeCustomerDeactivated = "customer.deactivated"
	TypeCustomerActivated   = "customer.activated"
)

// DomainEvent contrato comum dos eventos do agregado.
type DomainEvent interface {
	EventID() uuid.UUID
	AggregateID() uuid.UUID
	EventType() string
	OccurredAt() time.Time
}

// Base campos comuns a todos os eventos. O timestamp é sempre UTC.
type Base struct {
	ID        uuid.UUID `json:"event_id"`
	Aggregate uuid.UUID `json:"aggregate_id"`
	At        time.Time `json:"occurred_at"`
}

func (b Base) EventID() uuid.UUID     { return b.ID }
func (b Base) AggregateID() uuid.UUID { return b.Aggregate }
func (b Base) OccurredAt() time.Time  { return b.At }

func newBase(aggregateID uuid.UUID) Base {
	return Base{ID: uuid.New(), Aggregate: aggregateID, At: time.Now().UTC()}
}

// CustomerCreated emitido uma única vez, pelas fábricas do agregado.
type CustomerCreated struct {
	Base
	CustomerName string `json:"customer_name"`
	PersonType   string `json:"person_type"`
}

func NewCustomerCreated(aggregateID uuid.UUID, name, personType string) CustomerCreated {
	return CustomerCreated{Base: newBase(aggregateID), CustomerName: name, PersonType: personType}
}

func (CustomerCreated) EventType() string { return TypeCustomerCreated }

// CustomerUpdated carrega o retrato antes/depois dos campos mutáveis,
// serializado como texto opaco (JSON) para auditoria.
type CustomerUpdated struct {
	Base
	CustomerName string `json:"customer_name"`
	PersonType   string `json:"person_type"`
	OldData      string `json:"old_data"`
	NewData      string `json:"new_data"`
}

func NewCustomerUpdated(aggregateID uuid.UUID, name, personType, oldData, newData string) CustomerUpdated {
	return CustomerUpdated{
		Base:         newBase(aggregateID),
		CustomerName: name,
		PersonType:   personType,
		OldData:      oldData,
		NewData:      newData,
	}
}

func (CustomerUpdated) EventType() string { return TypeCustomerUpdated }

// CustomerDeactivated emitido ao desativar o cliente.
type CustomerDeactivated struct {
	Base
	CustomerName string `json:"customer_name"`
	PersonType   string `json:"person_type"`
}

func NewCustomerDeactivated(aggregateID uuid.UUID, name, personType string) CustomerDeactivated {
	return CustomerDeactivated{Base: newBase(aggregateID), CustomerName: name, PersonType: personType}
}

func (CustomerDeactivated) EventType() string { return TypeCustomerDeactivated }

// CustomerActivated emitido ao reativar o cliente.
type CustomerActivated struct {
	Base
	CustomerName string `json:"customer_name"`
	PersonType   string `json:"person_type"`
}

func NewCustomerActivated(aggregateID uuid.UUID, name, personType string) CustomerActivated {
	return CustomerActivated{Base: newBase(aggregateID), CustomerName: name, PersonType: personType}
}

func (CustomerActivated) EventType() string { return TypeCustomerActivated }
