package event_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/crm-clientes/internal/domain/event"
)

func TestDecode_RoundTripCreated(t *testing.T) {
	original := event.NewCustomerCreated(uuid.New(), "Maria Silva", "natural_person")

	data, err := event.Marshal(original)
	require.NoError(t, err)

	decoded, err := event.Decode(event.TypeCustomerCreated, data)
	require.NoError(t, err)

	created, ok := decoded.(event.CustomerCreated)
	require.True(t, ok)
	assert.Equal(t, original.EventID(), created.EventID())
	assert.Equal(t, original.AggregateID(), created.AggregateID())
	assert.Equal(t, "Maria Silva", created.CustomerName)
	assert.Equal(t, event.TypeCustomerCreated, created.EventType())
}

func TestDecode_RoundTripUpdatedPreservaRetratos(t *testing.T) {
	original := event.NewCustomerUpdated(uuid.New(), "ACME Ltda", "legal_entity",
		`{"name":"ACME"}`, `{"name":"ACME Ltda"}`)

	data, err := event.Marshal(original)
	require.NoError(t, err)

	decoded, err := event.Decode(event.TypeCustomerUpdated, data)
	require.NoError(t, err)

	updated := decoded.(event.CustomerUpdated)
	assert.Equal(t, `{"name":"ACME"}`, updated.OldData)
	assert.Equal(t, `{"name":"ACME Ltda"}`, updated.NewData)
}

// Tag desconhecido devolve ErrUnknownType; o leitor do event store usa isso
// para pular o registro em vez de falhar a consulta.
func TestDecode_TagDesconhecido(t *testing.T) {
	_, err := event.Decode("customer.merged", []byte(`{}`))
	assert.True(t, errors.Is(err, event.ErrUnknownType))
}

func TestDecode_PayloadCorrompido(t *testing.T) {
	_, err := event.Decode(event.TypeCustomerActivated, []byte(`{invalid`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, event.ErrUnknownType))
}
