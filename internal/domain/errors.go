package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("registro não encontrado")
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrPartInUse          = errors.New("autopeça possui movimentações vinculadas")
)

// ValidationError erro de validação de formulário. Message é o texto exibido
// ao usuário via flash; nunca contém detalhes internos.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError cria um erro de validação com a mensagem dada.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
