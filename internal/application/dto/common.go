package dto

// ErrorResponse corpo de erro HTTP. Errors traz detalhes adicionais quando
// há mais de uma violação.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}
