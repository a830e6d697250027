package customers

import (
	"context"

	"github.com/seu-usuario/crm-clientes/internal/domain/repository"
)

// TxRunner executa o callback com repositórios atados a uma mesma transação,
// para que o save do agregado e o append dos eventos sejam atômicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(customers repository.CustomerRepository, events repository.EventStore) error) error
}
