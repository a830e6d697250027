package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrCustomerNotFound   = errors.New("cliente não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrValidation         = errors.New("dados inválidos")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
)

// Validation cria um erro de validação com mensagem legível para o usuário.
// errors.Is(err, ErrValidation) continua funcionando para o mapeamento HTTP.
func Validation(msg string) error { return taggedError{tag: ErrValidation, msg: msg} }

// Conflict cria um erro de duplicidade com mensagem legível (ex.: "CPF já cadastrado").
func Conflict(msg string) error { return taggedError{tag: ErrDuplicate, msg: msg} }

// taggedError carrega a mensagem de negócio mantendo o sentinel para errors.Is.
type taggedError struct {
	tag error
	msg string
}

func (e taggedError) Error() string { return e.msg }

func (e taggedError) Is(target error) bool { return target == e.tag }
