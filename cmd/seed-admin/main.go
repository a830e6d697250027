// seed-admin cria o usuário administrador inicial do painel.
//
// Uso: go run ./cmd/seed-admin <email> <senha> [nome]
// Lê a configuração do banco do ambiente (.env), igual ao servidor.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	"github.com/seu-usuario/crm-clientes/internal/infrastructure/postgres"
	"github.com/seu-usuario/crm-clientes/pkg/config"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "uso: seed-admin <email> <senha> [nome]")
		os.Exit(1)
	}
	email, password := os.Args[1], os.Args[2]
	name := "Administrador"
	if len(os.Args) > 3 {
		name = os.Args[3]
	}
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "senha deve ter no mínimo 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migrações: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gerar hash: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         entity.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := postgres.NewUserRepository(pool).Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "criar usuário: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin criado: %s (%s)\n", user.Email, user.ID)
}
