// Package reports exporta relatórios do cadastro (PDF).
package reports

import (
	"context"
	"time"

	"github.com/seu-usuario/crm-clientes/internal/domain/entity"
	"github.com/seu-usuario/crm-clientes/internal/domain/repository"
)

// PDFGenerator porta do renderizador (Maroto na infraestrutura).
type PDFGenerator interface {
	CustomerReport(ctx context.Context, customers []*entity.Customer, generatedAt time.Time) ([]byte, error)
}

// UseCase geração do relatório de clientes.
type UseCase struct {
	customers repository.CustomerRepository
	pdf       PDFGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(customers repository.CustomerRepository, pdf PDFGenerator) *UseCase {
	return &UseCase{customers: customers, pdf: pdf}
}

// CustomerListPDF devolve os bytes do PDF com a lista de clientes.
func (uc *UseCase) CustomerListPDF(ctx context.Context, onlyActive bool) ([]byte, error) {
	var (
		list []*entity.Customer
		err  error
	)
	if onlyActive {
		list, err = uc.customers.ListActive(ctx)
	} else {
		list, err = uc.customers.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return uc.pdf.CustomerReport(ctx, list, time.Now().UTC())
}
