package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/crm-clientes/internal/application/auth"
	"github.com/seu-usuario/crm-clientes/internal/application/dto"
	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	pkgjwt "github.com/seu-usuario/crm-clientes/pkg/jwt"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	clone := *u
	r.byEmail[u.Email] = &clone
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func newTestUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "crm-clientes-test",
	})
	return uc, repo
}

func TestRegister_NormalizaEmailEDefaultOperador(t *testing.T) {
	uc, repo := newTestUseCase()

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Maria",
		Email:    "  Maria@Empresa.COM.BR ",
		Password: "senha-forte",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@empresa.com.br", out.Email)
	assert.Equal(t, entity.RoleOperador, out.Role)
	assert.True(t, out.Active)

	stored := repo.byEmail["maria@empresa.com.br"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte", stored.PasswordHash, "senha não pode ser guardada em claro")
}

func TestRegister_SenhaCurta(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "a@b.com", Password: "curta",
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "senha-forte"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "A@B.com", Password: "senha-forte"})
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))
}

func TestRegister_PapelInvalido(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email: "a@b.com", Password: "senha-forte", Role: "super-root",
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestLogin_TokenValido(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Email: "maria@empresa.com.br", Password: "senha-forte", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "maria@empresa.com.br", Password: "senha-forte"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "senha-forte"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "senha-errada"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "x@y.com", Password: "qualquer-uma"})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_UsuarioInativo(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "senha-forte"})
	require.NoError(t, err)
	repo.byEmail["a@b.com"].Active = false

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "senha-forte"})
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}
