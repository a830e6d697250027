package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/crm-clientes/internal/domain"
	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	"github.com/seu-usuario/crm-clientes/internal/domain/repository"
	"github.com/seu-usuario/crm-clientes/internal/domain/valueobject"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `
	id, person_type, name, cpf, cnpj, birth_date, foundation_date,
	phone, email, zip_code, street, number, complement, neighborhood, city, state,
	state_registration, state_registration_exempt, active, created_at, updated_at`

// CustomerRepo adaptador PostgreSQL de CustomerRepository (usável com pool ou tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Add persiste um cliente novo.
func (r *CustomerRepo) Add(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query, customerArgs(c)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update atualiza os campos mutáveis do cliente.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers SET
			name = $2, phone = $3, email = $4,
			zip_code = $5, street = $6, number = $7, complement = $8,
			neighborhood = $9, city = $10, state = $11,
			state_registration = $12, state_registration_exempt = $13,
			active = $14, updated_at = $15
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Name, c.Phone.String(), c.Email.String(),
		c.Address.ZipCode, c.Address.Street, c.Address.Number, nullIfEmpty(c.Address.Complement),
		c.Address.Neighborhood, c.Address.City, c.Address.State,
		c.StateRegistration, c.StateRegistrationExempt,
		c.Active, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// GetByID devolve o cliente ou (nil, nil) se não existir.
func (r *CustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
}

// GetByCPF busca por CPF normalizado (11 dígitos).
func (r *CustomerRepo) GetByCPF(ctx context.Context, cpf string) (*entity.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE cpf = $1`, cpf)
}

// GetByCNPJ busca por CNPJ normalizado (14 dígitos).
func (r *CustomerRepo) GetByCNPJ(ctx context.Context, cnpj string) (*entity.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE cnpj = $1`, cnpj)
}

// GetByEmail busca por email normalizado.
func (r *CustomerRepo) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	return r.getBy(ctx, `SELECT `+customerColumns+` FROM customers WHERE email = $1`, email)
}

// ListAll lista todos os clientes ordenados por nome.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]*entity.Customer, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name`)
}

// ListActive lista somente os clientes ativos.
func (r *CustomerRepo) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	return r.list(ctx, `SELECT `+customerColumns+` FROM customers WHERE active ORDER BY name`)
}

// ExistsByCPF checagem consultiva de unicidade (a garantia é o índice único).
func (r *CustomerRepo) ExistsByCPF(ctx context.Context, cpf string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE cpf = $1 AND ($2::uuid IS NULL OR id <> $2))`, cpf, excludeID)
}

// ExistsByCNPJ idem para CNPJ.
func (r *CustomerRepo) ExistsByCNPJ(ctx context.Context, cnpj string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE cnpj = $1 AND ($2::uuid IS NULL OR id <> $2))`, cnpj, excludeID)
}

// ExistsByEmail idem para email.
func (r *CustomerRepo) ExistsByEmail(ctx context.Context, email string, excludeID *uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE email = $1 AND ($2::uuid IS NULL OR id <> $2))`, email, excludeID)
}

func (r *CustomerRepo) getBy(ctx context.Context, query string, arg any) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) list(ctx context.Context, query string) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) exists(ctx context.Context, query string, value string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	if err := r.q.QueryRow(ctx, query, value, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists customer: %w", err)
	}
	return exists, nil
}

func customerArgs(c *entity.Customer) []any {
	return []any{
		c.ID, string(c.PersonType), c.Name,
		nullIfEmpty(c.CPF.String()), nullIfEmpty(c.CNPJ.String()),
		c.BirthDate, c.FoundationDate,
		c.Phone.String(), c.Email.String(),
		c.Address.ZipCode, c.Address.Street, c.Address.Number, nullIfEmpty(c.Address.Complement),
		c.Address.Neighborhood, c.Address.City, c.Address.State,
		c.StateRegistration, c.StateRegistrationExempt,
		c.Active, c.CreatedAt, c.UpdatedAt,
	}
}

// scanCustomer reconstrói o agregado a partir da linha; os objetos de valor
// passam pelos construtores validadores (o banco só guarda valores normalizados).
func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		c          entity.Customer
		personType string
		cpf, cnpj  *string
		phone      string
		email      string
		complement *string
		zip, street, number, neighborhood, city, state string
	)
	err := row.Scan(
		&c.ID, &personType, &c.Name, &cpf, &cnpj, &c.BirthDate, &c.FoundationDate,
		&phone, &email, &zip, &street, &number, &complement, &neighborhood, &city, &state,
		&c.StateRegistration, &c.StateRegistrationExempt, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.PersonType = entity.PersonType(personType)
	if cpf != nil {
		if c.CPF, err = valueobject.NewCPF(*cpf); err != nil {
			return nil, fmt.Errorf("cpf armazenado: %w", err)
		}
	}
	if cnpj != nil {
		if c.CNPJ, err = valueobject.NewCNPJ(*cnpj); err != nil {
			return nil, fmt.Errorf("cnpj armazenado: %w", err)
		}
	}
	if c.Phone, err = valueobject.NewPhone(phone); err != nil {
		return nil, fmt.Errorf("telefone armazenado: %w", err)
	}
	if c.Email, err = valueobject.NewEmail(email); err != nil {
		return nil, fmt.Errorf("email armazenado: %w", err)
	}
	comp := ""
	if complement != nil {
		comp = *complement
	}
	if c.Address, err = valueobject.NewAddress(zip, street, number, comp, neighborhood, city, state); err != nil {
		return nil, fmt.Errorf("endereço armazenado: %w", err)
	}
	return &c, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
