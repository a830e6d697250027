package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
)

// CustomerRepository porta de persistência do agregado Customer.
// Métodos Get* devolvem (nil, nil) quando não há registro.
type CustomerRepository interface {
	Add(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCPF(ctx context.Context, cpf string) (*entity.Customer, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	ListAll(ctx context.Context) ([]*entity.Customer, error)
	ListActive(ctx context.Context) ([]*entity.Customer, error)
	ExistsByCPF(ctx context.Context, cpf string, excludeID *uuid.UUID) (bool, error)
	ExistsByCNPJ(ctx context.Context, cnpj string, excludeID *uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error)
}
