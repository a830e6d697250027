package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User usuário do painel administrativo. O ID do usuário autenticado é
// gravado como ator em cada evento anexado ao event store.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca em claro depois de persistido
	Name         string
	Role         string // admin, operador
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
