package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/seu-usuario/crm-clientes/internal/domain/event"
	"github.com/seu-usuario/crm-clientes/internal/domain/repository"
)

var _ repository.EventStore = (*EventStore)(nil)

// EventStore adaptador PostgreSQL do log append-only de eventos de domínio.
// A tabela nunca sofre UPDATE nem DELETE.
type EventStore struct {
	q Querier
}

// NewEventStore constrói o adaptador. Passar pool ou tx (Querier).
func NewEventStore(q Querier) *EventStore {
	return &EventStore{q: q}
}

// Append anexa o evento serializado com o ator do comando.
func (s *EventStore) Append(ctx context.Context, e event.DomainEvent, actorID string) error {
	data, err := event.Marshal(e)
	if err != nil {
		return err
	}
	_, err = s.q.Exec(ctx, `
		INSERT INTO event_store (event_id, aggregate_id, event_type, event_data, actor_id, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.EventID(), e.AggregateID(), e.EventType(), string(data), actorID, e.OccurredAt(),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// EventsFor devolve os eventos do agregado em ordem de ocorrência.
// Tags desconhecidos são pulados (compatibilidade com tipos futuros).
func (s *EventStore) EventsFor(ctx context.Context, aggregateID uuid.UUID) ([]event.DomainEvent, error) {
	return s.queryEvents(ctx, `
		SELECT event_type, event_data FROM event_store
		WHERE aggregate_id = $1 ORDER BY occurred_at`, aggregateID)
}

// AllEvents devolve todos os eventos em ordem de ocorrência.
func (s *EventStore) AllEvents(ctx context.Context) ([]event.DomainEvent, error) {
	return s.queryEvents(ctx, `
		SELECT event_type, event_data FROM event_store ORDER BY occurred_at`)
}

// RawEventsFor devolve os registros brutos para a trilha de auditoria.
func (s *EventStore) RawEventsFor(ctx context.Context, aggregateID uuid.UUID) ([]repository.StoredEvent, error) {
	rows, err := s.q.Query(ctx, `
		SELECT event_id, aggregate_id, event_type, event_data, actor_id, occurred_at
		FROM event_store WHERE aggregate_id = $1 ORDER BY occurred_at`, aggregateID)
	if err != nil {
		return nil, fmt.Errorf("raw events: %w", err)
	}
	defer rows.Close()

	var out []repository.StoredEvent
	for rows.Next() {
		var se repository.StoredEvent
		if err := rows.Scan(&se.EventID, &se.AggregateID, &se.EventType, &se.EventData, &se.ActorID, &se.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, se)
	}
	return out, rows.Err()
}

func (s *EventStore) queryEvents(ctx context.Context, query string, args ...any) ([]event.DomainEvent, error) {
	rows, err := s.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var raw []rawEvent
	for rows.Next() {
		var r rawEvent
		if err := rows.Scan(&r.eventType, &r.eventData); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return decodeEvents(raw)
}

// rawEvent linha do event store ainda não decodificada.
type rawEvent struct {
	eventType string
	eventData string
}

// decodeEvents decodifica os registros preservando a ordem. Registros com
// tag desconhecido são pulados; qualquer outro erro aborta a leitura.
func decodeEvents(raw []rawEvent) ([]event.DomainEvent, error) {
	var out []event.DomainEvent
	for _, r := range raw {
		e, err := event.Decode(r.eventType, []byte(r.eventData))
		if err != nil {
			if errors.Is(err, event.ErrUnknownType) {
				continue
			}
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
