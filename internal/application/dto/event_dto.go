package dto

import "time"

// EventResponse registro da trilha de auditoria de um cliente.
// event_data é o payload JSON original, opaco para o consumidor.
type EventResponse struct {
	EventID     string    `json:"event_id"`
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	EventData   string    `json:"event_data"`
	ActorID     string    `json:"actor_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}
