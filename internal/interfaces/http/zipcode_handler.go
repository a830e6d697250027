package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/crm-clientes/internal/application/zipcode"
)

// ZipCodeHandler consulta de CEP (preenchimento de endereço no painel).
type ZipCodeHandler struct {
	uc *zipcode.UseCase
}

// NewZipCodeHandler constrói o handler.
func NewZipCodeHandler(uc *zipcode.UseCase) *ZipCodeHandler {
	return &ZipCodeHandler{uc: uc}
}

// Lookup GET /api/zipcode/:cep
func (h *ZipCodeHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.Context(), c.Params("cep"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
