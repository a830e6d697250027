package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/crm-clientes/internal/application/auth"
	"github.com/seu-usuario/crm-clientes/internal/application/customers"
	"github.com/seu-usuario/crm-clientes/internal/application/reports"
	"github.com/seu-usuario/crm-clientes/internal/application/zipcode"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CustomerUC *customers.UseCase
	ZipCodeUC  *zipcode.UseCase
	ReportUC   *reports.UseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes (protegido)
	customersGroup := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Post("/natural-person", customerHandler.CreateNaturalPerson)
	customersGroup.Post("/legal-entity", customerHandler.CreateLegalEntity)
	// "report" antes de ":id" para o Fiber não casar como id.
	customersGroup.Get("/report", reportHandler.CustomerListPDF)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Get("/:id/events", customerHandler.Events)
	customersGroup.Put("/:id", customerHandler.Update)
	customersGroup.Put("/:id/activate", customerHandler.Activate)
	customersGroup.Put("/:id/deactivate", customerHandler.Deactivate)

	// CEP (protegido)
	zipGroup := protected.Group("/zipcode")
	zipHandler := NewZipCodeHandler(deps.ZipCodeUC)
	zipGroup.Get("/:cep", zipHandler.Lookup)
}
