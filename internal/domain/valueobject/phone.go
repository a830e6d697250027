package valueobject

import (
	"strings"
	"unicode"

	"github.com/seu-usuario/crm-clientes/internal/domain"
)

// Phone telefone brasileiro normalizado: 10 dígitos (fixo) ou 11 (celular),
// incluindo DDD. Não valida DDD nem operadora.
type Phone struct {
	value string
}

// NewPhone remove a máscara e valida o tamanho.
func NewPhone(raw string) (Phone, error) {
	if strings.TrimSpace(raw) == "" {
		return Phone{}, domain.Validation("telefone não pode ser vazio")
	}
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if len(clean) < 10 || len(clean) > 11 {
		return Phone{}, domain.Validation("telefone inválido")
	}
	return Phone{value: clean}, nil
}

// String devolve somente os dígitos.
func (p Phone) String() string { return p.value }

// Formatted devolve (DD) 0000-0000 ou (DD) 90000-0000 para celular.
func (p Phone) Formatted() string {
	if len(p.value) == 11 {
		return "(" + p.value[:2] + ") " + p.value[2:7] + "-" + p.value[7:]
	}
	return "(" + p.value[:2] + ") " + p.value[2:6] + "-" + p.value[6:]
}
