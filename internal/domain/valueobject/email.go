package valueobject

import (
	"net/mail"
	"strings"

	"github.com/seu-usuario/crm-clientes/internal/domain"
)

// Email endereço de email normalizado (trim + minúsculas).
type Email struct {
	value string
}

// NewEmail normaliza e valida. Exige formato local@dominio com pelo menos
// um ponto no domínio.
func NewEmail(raw string) (Email, error) {
	if strings.TrimSpace(raw) == "" {
		return Email{}, domain.Validation("email não pode ser vazio")
	}
	normalized := strings.ToLower(strings.TrimSpace(raw))

	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return Email{}, domain.Validation("email inválido")
	}
	at := strings.LastIndex(normalized, "@")
	if at < 0 || !strings.Contains(normalized[at+1:], ".") {
		return Email{}, domain.Validation("email inválido")
	}
	return Email{value: normalized}, nil
}

// String devolve o email normalizado.
func (e Email) String() string { return e.value }
