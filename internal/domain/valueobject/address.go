package valueobject

import (
	"strings"
	"unicode"

	"github.com/seu-usuario/crm-clientes/internal/domain"
)

// Address endereço postal do cliente. Igualdade estrutural sobre os sete
// campos; o CEP é guardado só com dígitos (8).
type Address struct {
	ZipCode      string `json:"zip_code"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// NewAddress valida os campos obrigatórios e normaliza o CEP.
// Complement é opcional.
func NewAddress(zipCode, street, number, complement, neighborhood, city, state string) (Address, error) {
	switch {
	case strings.TrimSpace(zipCode) == "":
		return Address{}, domain.Validation("CEP não pode ser vazio")
	case strings.TrimSpace(street) == "":
		return Address{}, domain.Validation("logradouro não pode ser vazio")
	case strings.TrimSpace(number) == "":
		return Address{}, domain.Validation("número não pode ser vazio")
	case strings.TrimSpace(neighborhood) == "":
		return Address{}, domain.Validation("bairro não pode ser vazio")
	case strings.TrimSpace(city) == "":
		return Address{}, domain.Validation("cidade não pode ser vazia")
	case strings.TrimSpace(state) == "":
		return Address{}, domain.Validation("estado não pode ser vazio")
	}

	var b strings.Builder
	for _, r := range zipCode {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	cleanZip := b.String()
	if len(cleanZip) != 8 {
		return Address{}, domain.Validation("CEP inválido")
	}

	return Address{
		ZipCode:      cleanZip,
		Street:       street,
		Number:       number,
		Complement:   complement,
		Neighborhood: neighborhood,
		City:         city,
		State:        state,
	}, nil
}

// FormattedZipCode devolve o CEP com máscara 00000-000.
func (a Address) FormattedZipCode() string {
	if len(a.ZipCode) != 8 {
		return a.ZipCode
	}
	return a.ZipCode[:5] + "-" + a.ZipCode[5:]
}
