package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	"github.com/seu-usuario/crm-clientes/internal/domain/event"
	"github.com/seu-usuario/crm-clientes/internal/domain/valueobject"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	validCPF  = "52998224725"
	validCNPJ = "11222333000181"
)

func testAddress(t *testing.T) valueobject.Address {
	t.Helper()
	addr, err := valueobject.NewAddress("01001000", "Praça da Sé", "100", "", "Sé", "São Paulo", "SP")
	require.NoError(t, err)
	return addr
}

func adultBirthDate() time.Time {
	return time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
}

func newNaturalPerson(t *testing.T) *entity.Customer {
	t.Helper()
	c, err := entity.NewNaturalPerson("Maria Silva", validCPF, adultBirthDate(),
		"11987654321", "maria@exemplo.com.br", testAddress(t))
	require.NoError(t, err)
	return c
}

func ie(v string) *string { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Fábricas
// ──────────────────────────────────────────────────────────────────────────────

func TestNewNaturalPerson_EmiteUmCreated(t *testing.T) {
	c := newNaturalPerson(t)

	assert.Equal(t, entity.NaturalPerson, c.PersonType)
	assert.True(t, c.Active, "cliente nasce ativo")
	assert.Nil(t, c.UpdatedAt)

	pending := c.PendingEvents()
	require.Len(t, pending, 1)
	created, ok := pending[0].(event.CustomerCreated)
	require.True(t, ok)
	assert.Equal(t, c.ID, created.AggregateID())
	assert.Equal(t, "Maria Silva", created.CustomerName)
}

func TestNewNaturalPerson_CPFInvalido(t *testing.T) {
	_, err := entity.NewNaturalPerson("Maria Silva", "52998224726", adultBirthDate(),
		"11987654321", "maria@exemplo.com.br", testAddress(t))
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

// Limite exato: quem faz 18 anos hoje pode se cadastrar; um dia a menos, não.
func TestNewNaturalPerson_IdadeMinima(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	exactly18 := today.AddDate(-18, 0, 0)
	_, err := entity.NewNaturalPerson("Jovem Adulto", validCPF, exactly18,
		"11987654321", "jovem@exemplo.com.br", testAddress(t))
	assert.NoError(t, err, "18 anos completos hoje deve ser aceito")

	almost18 := today.AddDate(-18, 0, 1)
	_, err = entity.NewNaturalPerson("Quase Adulto", validCPF, almost18,
		"11987654321", "quase@exemplo.com.br", testAddress(t))
	assert.True(t, errors.Is(err, domain.ErrValidation), "menor de 18 deve ser rejeitado")
}

func TestNewLegalEntity_ExigeInscricaoOuIsencao(t *testing.T) {
	foundation := time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC)
	addr := testAddress(t)

	// Sem inscrição e sem isenção: rejeitado.
	_, err := entity.NewLegalEntity("ACME Ltda", validCNPJ, foundation,
		"1134567890", "contato@acme.com.br", addr, nil, false)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	// Inscrição preenchida: aceito.
	_, err = entity.NewLegalEntity("ACME Ltda", validCNPJ, foundation,
		"1134567890", "contato@acme.com.br", addr, ie("110042490114"), false)
	assert.NoError(t, err)

	// Isenta: aceito.
	c, err := entity.NewLegalEntity("ACME Ltda", validCNPJ, foundation,
		"1134567890", "contato@acme.com.br", addr, nil, true)
	require.NoError(t, err)
	assert.Equal(t, entity.LegalEntity, c.PersonType)
	require.Len(t, c.PendingEvents(), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_EmiteUpdatedComRetratosDiferentes(t *testing.T) {
	c := newNaturalPerson(t)
	c.ClearEvents()

	err := c.Update("Maria Silva Santos", "11987654321", "maria.santos@exemplo.com.br",
		testAddress(t), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva Santos", c.Name)
	require.NotNil(t, c.UpdatedAt)

	pending := c.PendingEvents()
	require.Len(t, pending, 1)
	updated, ok := pending[0].(event.CustomerUpdated)
	require.True(t, ok)
	assert.NotEqual(t, updated.OldData, updated.NewData)
	assert.Contains(t, updated.NewData, "Maria Silva Santos")
	assert.Contains(t, updated.OldData, "Maria Silva")
}

// Validação falhou: o agregado fica intacto e nenhum evento é emitido.
func TestUpdate_FalhaNaoMutaOAgregado(t *testing.T) {
	c := newNaturalPerson(t)
	c.ClearEvents()
	originalName := c.Name
	originalEmail := c.Email.String()

	err := c.Update("", "11987654321", "maria@exemplo.com.br", testAddress(t), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	assert.Equal(t, originalName, c.Name)
	assert.Equal(t, originalEmail, c.Email.String())
	assert.Nil(t, c.UpdatedAt)
	assert.Empty(t, c.PendingEvents())
}

func TestUpdate_PessoaJuridicaSubstituiInscricao(t *testing.T) {
	foundation := time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC)
	c, err := entity.NewLegalEntity("ACME Ltda", validCNPJ, foundation,
		"1134567890", "contato@acme.com.br", testAddress(t), ie("110042490114"), false)
	require.NoError(t, err)
	c.ClearEvents()

	// Remover a inscrição sem marcar isenção viola a invariante.
	err = c.Update("ACME Ltda", "1134567890", "contato@acme.com.br", testAddress(t), nil, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	require.NotNil(t, c.StateRegistration, "falha não pode ter removido a inscrição")

	// Trocar para isenta é válido.
	exempt := true
	err = c.Update("ACME Ltda", "1134567890", "contato@acme.com.br", testAddress(t), nil, &exempt)
	require.NoError(t, err)
	assert.Nil(t, c.StateRegistration)
	assert.True(t, c.StateRegistrationExempt)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ativação / desativação
// ──────────────────────────────────────────────────────────────────────────────

func TestDeactivateActivate_EmitemEventosNaOrdem(t *testing.T) {
	c := newNaturalPerson(t)
	c.ClearEvents()

	c.Deactivate()
	assert.False(t, c.Active)
	c.Activate()
	assert.True(t, c.Active)

	pending := c.PendingEvents()
	require.Len(t, pending, 2)
	assert.Equal(t, event.TypeCustomerDeactivated, pending[0].EventType())
	assert.Equal(t, event.TypeCustomerActivated, pending[1].EventType())
}

func TestClearEvents_EsvaziaOBuffer(t *testing.T) {
	c := newNaturalPerson(t)
	require.NotEmpty(t, c.PendingEvents())
	c.ClearEvents()
	assert.Empty(t, c.PendingEvents())
}
