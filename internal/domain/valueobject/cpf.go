// Package valueobject contém os objetos de valor do cadastro: imutáveis,
// autovalidados no construtor e comparados por valor.
package valueobject

import (
	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/pkg/document"
)

// CPF documento de pessoa física, guardado normalizado (11 dígitos).
type CPF struct {
	value string
}

// NewCPF limpa e valida o CPF. Aceita com ou sem máscara.
func NewCPF(raw string) (CPF, error) {
	clean, err := document.CleanCPF(raw)
	if err != nil {
		return CPF{}, domain.Validation("CPF inválido")
	}
	return CPF{value: clean}, nil
}

// String devolve os 11 dígitos normalizados.
func (c CPF) String() string { return c.value }

// Formatted devolve a máscara usual 000.000.000-00 (visão derivada, não armazenada).
func (c CPF) Formatted() string { return document.FormatCPF(c.value) }

// IsZero indica o valor zero (CPF ausente).
func (c CPF) IsZero() bool { return c.value == "" }
