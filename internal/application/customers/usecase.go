// Package customers orquestra os casos de uso do cadastro: cada comando
// carrega (ou constrói) o agregado, aplica a transição, persiste o estado,
// anexa os eventos emitidos ao event store e limpa o buffer do agregado.
package customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/seu-usuario/crm-clientes/internal/application/dto"
	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	"github.com/seu-usuario/crm-clientes/internal/domain/repository"
	"github.com/seu-usuario/crm-clientes/internal/domain/valueobject"
)

// UseCase comandos e consultas do agregado Customer.
type UseCase struct {
	customers repository.CustomerRepository
	events    repository.EventStore
	tx        TxRunner
}

// NewUseCase constrói o caso de uso. customers/events são usados nas
// consultas e pré-checagens; tx embala cada comando em uma transação.
func NewUseCase(customers repository.CustomerRepository, events repository.EventStore, tx TxRunner) *UseCase {
	return &UseCase{customers: customers, events: events, tx: tx}
}

// CreateNaturalPerson cadastra pessoa física. As checagens de unicidade aqui
// são consultivas; a garantia real são os índices únicos do banco.
func (uc *UseCase) CreateNaturalPerson(ctx context.Context, actorID string, in dto.CreateNaturalPersonRequest) (*dto.CustomerResponse, error) {
	cpf, err := valueobject.NewCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	if exists, err := uc.customers.ExistsByCPF(ctx, cpf.String(), nil); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.Conflict("CPF já cadastrado")
	}
	if err := uc.checkEmailAvailable(ctx, in.Email, nil); err != nil {
		return nil, err
	}

	address, err := addressFromPayload(in.Address)
	if err != nil {
		return nil, err
	}
	customer, err := entity.NewNaturalPerson(in.Name, in.CPF, in.BirthDate, in.Phone, in.Email, address)
	if err != nil {
		return nil, err
	}
	if err := uc.saveNew(ctx, customer, actorID); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// CreateLegalEntity cadastra pessoa jurídica.
func (uc *UseCase) CreateLegalEntity(ctx context.Context, actorID string, in dto.CreateLegalEntityRequest) (*dto.CustomerResponse, error) {
	cnpj, err := valueobject.NewCNPJ(in.CNPJ)
	if err != nil {
		return nil, err
	}
	if exists, err := uc.customers.ExistsByCNPJ(ctx, cnpj.String(), nil); err != nil {
		return nil, err
	} else if exists {
		return nil, domain.Conflict("CNPJ já cadastrado")
	}
	if err := uc.checkEmailAvailable(ctx, in.Email, nil); err != nil {
		return nil, err
	}

	address, err := addressFromPayload(in.Address)
	if err != nil {
		return nil, err
	}
	customer, err := entity.NewLegalEntity(
		in.Name, in.CNPJ, in.FoundationDate, in.Phone, in.Email, address,
		in.StateRegistration, in.StateRegistrationExempt,
	)
	if err != nil {
		return nil, err
	}
	if err := uc.saveNew(ctx, customer, actorID); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// Update aplica os campos mutáveis e revalida as invariantes do agregado.
func (uc *UseCase) Update(ctx context.Context, actorID string, id uuid.UUID, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkEmailAvailable(ctx, in.Email, &id); err != nil {
		return nil, err
	}
	address, err := addressFromPayload(in.Address)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(in.Name, in.Phone, in.Email, address, in.StateRegistration, in.StateRegistrationExempt); err != nil {
		return nil, err
	}
	if err := uc.saveExisting(ctx, customer, actorID); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// Activate reativa o cliente. A idempotência é explícita: reativar um cliente
// já ativo é rejeitado aqui, não silenciado pelo agregado.
func (uc *UseCase) Activate(ctx context.Context, actorID string, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer.Active {
		return nil, domain.Validation("cliente já está ativo")
	}
	customer.Activate()
	if err := uc.saveExisting(ctx, customer, actorID); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// Deactivate desativa o cliente; simétrico a Activate.
func (uc *UseCase) Deactivate(ctx context.Context, actorID string, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, domain.Validation("cliente já está inativo")
	}
	customer.Deactivate()
	if err := uc.saveExisting(ctx, customer, actorID); err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// GetByID consulta um cliente.
func (uc *UseCase) GetByID(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(customer), nil
}

// List lista clientes; onlyActive filtra os ativos.
func (uc *UseCase) List(ctx context.Context, onlyActive bool) ([]*dto.CustomerResponse, error) {
	var (
		list []*entity.Customer
		err  error
	)
	if onlyActive {
		list, err = uc.customers.ListActive(ctx)
	} else {
		list, err = uc.customers.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return out, nil
}

// Events devolve a trilha de auditoria do cliente em ordem de ocorrência.
func (uc *UseCase) Events(ctx context.Context, id uuid.UUID) ([]dto.EventResponse, error) {
	stored, err := uc.events.RawEventsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EventResponse, 0, len(stored))
	for _, s := range stored {
		out = append(out, dto.EventResponse{
			EventID:     s.EventID.String(),
			AggregateID: s.AggregateID.String(),
			EventType:   s.EventType,
			EventData:   s.EventData,
			ActorID:     s.ActorID,
			OccurredAt:  s.OccurredAt,
		})
	}
	return out, nil
}

func (uc *UseCase) load(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := uc.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (uc *UseCase) checkEmailAvailable(ctx context.Context, email string, excludeID *uuid.UUID) error {
	normalized, err := valueobject.NewEmail(email)
	if err != nil {
		return err
	}
	exists, err := uc.customers.ExistsByEmail(ctx, normalized.String(), excludeID)
	if err != nil {
		return err
	}
	if exists {
		if excludeID != nil {
			return domain.Conflict("email já cadastrado para outro cliente")
		}
		return domain.Conflict("email já cadastrado")
	}
	return nil
}

// saveNew persiste o agregado recém-criado e anexa os eventos pendentes na
// mesma transação; o buffer é limpo só depois do commit.
func (uc *UseCase) saveNew(ctx context.Context, customer *entity.Customer, actorID string) error {
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, events repository.EventStore) error {
		if err := customers.Add(ctx, customer); err != nil {
			return err
		}
		for _, e := range customer.PendingEvents() {
			if err := events.Append(ctx, e, actorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	customer.ClearEvents()
	return nil
}

// saveExisting idem para agregado já persistido.
func (uc *UseCase) saveExisting(ctx context.Context, customer *entity.Customer, actorID string) error {
	err := uc.tx.Run(ctx, func(customers repository.CustomerRepository, events repository.EventStore) error {
		if err := customers.Update(ctx, customer); err != nil {
			return err
		}
		for _, e := range customer.PendingEvents() {
			if err := events.Append(ctx, e, actorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	customer.ClearEvents()
	return nil
}
