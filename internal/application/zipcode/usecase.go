// Package zipcode consulta de CEP para preenchimento automático de endereço
// no painel. Não participa das invariantes do agregado.
package zipcode

import (
	"context"
	"strings"
	"unicode"

	"github.com/seu-usuario/crm-clientes/internal/application/dto"
	"github.com/seu-usuario/crm-clientes/internal/domain"
)

// Info resultado cru do provedor de CEP.
type Info struct {
	ZipCode      string
	Street       string
	Neighborhood string
	City         string
	State        string
	Found        bool
}

// Client porta do provedor externo (ViaCEP). Devolve (nil, nil) quando o
// provedor está fora ou a resposta é inválida.
type Client interface {
	Lookup(ctx context.Context, zipCode string) (*Info, error)
}

// UseCase consulta de CEP.
type UseCase struct {
	client Client
}

// NewUseCase constrói o caso de uso.
func NewUseCase(client Client) *UseCase {
	return &UseCase{client: client}
}

// Lookup normaliza o CEP, consulta o provedor e devolve o endereço.
func (uc *UseCase) Lookup(ctx context.Context, raw string) (*dto.ZipCodeResponse, error) {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if len(clean) != 8 {
		return nil, domain.Validation("CEP inválido")
	}

	info, err := uc.client.Lookup(ctx, clean)
	if err != nil {
		return nil, err
	}
	if info == nil || !info.Found {
		return nil, domain.ErrNotFound
	}
	return &dto.ZipCodeResponse{
		ZipCode:      info.ZipCode,
		Street:       info.Street,
		Neighborhood: info.Neighborhood,
		City:         info.City,
		State:        info.State,
		Found:        true,
	}, nil
}
