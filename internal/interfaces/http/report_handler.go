package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/crm-clientes/internal/application/reports"
)

// ReportHandler exporta relatórios em PDF.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CustomerListPDF GET /api/customers/report?only_active=true
func (h *ReportHandler) CustomerListPDF(c *fiber.Ctx) error {
	onlyActive := c.QueryBool("only_active", false)
	pdfBytes, err := h.uc.CustomerListPDF(c.Context(), onlyActive)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="clientes.pdf"`)
	return c.Send(pdfBytes)
}
