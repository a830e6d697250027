package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownType tag de evento sem decodificador registrado. O caminho de
// leitura pula o registro em vez de falhar a consulta inteira.
var ErrUnknownType = errors.New("tipo de evento desconhecido")

// Marshal serializa o evento para o event store.
func Marshal(e DomainEvent) ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("serializar evento %s: %w", e.EventType(), err)
	}
	return data, nil
}

// decoders registry de tag → decodificador. O discriminante fica no registro
// armazenado (coluna event_type), não dentro do payload.
var decoders = map[string]func([]byte) (DomainEvent, error){
	TypeCustomerCreated: func(data []byte) (DomainEvent, error) {
		var e CustomerCreated
		return e, json.Unmarshal(data, &e)
	},
	TypeCustomerUpdated: func(data []byte) (DomainEvent, error) {
		var e CustomerUpdated
		return e, json.Unmarshal(data, &e)
	},
	TypeCustomerDeactivated: func(data []byte) (DomainEvent, error) {
		var e CustomerDeactivated
		return e, json.Unmarshal(data, &e)
	},
	TypeCustomerActivated: func(data []byte) (DomainEvent, error) {
		var e CustomerActivated
		return e, json.Unmarshal(data, &e)
	},
}

// Decode reconstrói o evento a partir do tag registrado.
// Devolve ErrUnknownType para tags não registrados.
func Decode(eventType string, data []byte) (DomainEvent, error) {
	dec, ok := decoders[eventType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, eventType)
	}
	e, err := dec(data)
	if err != nil {
		return nil, fmt.Errorf("decodificar evento %s: %w", eventType, err)
	}
	return e, nil
}
