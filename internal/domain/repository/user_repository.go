package repository

import (
	"context"

	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
)

// UserRepository porta de persistência para usuários do painel.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
