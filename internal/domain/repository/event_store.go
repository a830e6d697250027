package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/crm-clientes/internal/domain/event"
)

// StoredEvent registro bruto do event store, como persistido (o payload fica
// opaco; a trilha de auditoria expõe o JSON original).
type StoredEvent struct {
	EventID     uuid.UUID
	AggregateID uuid.UUID
	EventType   string
	EventData   string
	ActorID     string
	OccurredAt  time.Time
}

// EventStore log durável e append-only dos eventos de domínio. Nunca é
// alterado nem podado; é a única fonte de verdade do histórico de auditoria.
type EventStore interface {
	// Append anexa o evento com o ator que executou o comando.
	// Falha somente por erro de armazenamento.
	Append(ctx context.Context, e event.DomainEvent, actorID string) error
	// EventsFor devolve os eventos do agregado em ordem de ocorrência,
	// pulando registros com tipo desconhecido.
	EventsFor(ctx context.Context, aggregateID uuid.UUID) ([]event.DomainEvent, error)
	// AllEvents devolve todos os eventos em ordem de ocorrência.
	AllEvents(ctx context.Context) ([]event.DomainEvent, error)
	// RawEventsFor devolve os registros brutos (inclusive ator e payload)
	// para a trilha de auditoria da API.
	RawEventsFor(ctx context.Context, aggregateID uuid.UUID) ([]StoredEvent, error)
}
