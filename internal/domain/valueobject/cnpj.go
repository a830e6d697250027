package valueobject

import (
	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/pkg/document"
)

// CNPJ documento de pessoa jurídica, guardado normalizado (14 dígitos).
type CNPJ struct {
	value string
}

// NewCNPJ limpa e valida o CNPJ. Aceita com ou sem máscara.
func NewCNPJ(raw string) (CNPJ, error) {
	clean, err := document.CleanCNPJ(raw)
	if err != nil {
		return CNPJ{}, domain.Validation("CNPJ inválido")
	}
	return CNPJ{value: clean}, nil
}

// String devolve os 14 dígitos normalizados.
func (c CNPJ) String() string { return c.value }

// Formatted devolve a máscara usual 00.000.000/0000-00.
func (c CNPJ) Formatted() string { return document.FormatCNPJ(c.value) }

// IsZero indica o valor zero (CNPJ ausente).
func (c CNPJ) IsZero() bool { return c.value == "" }
