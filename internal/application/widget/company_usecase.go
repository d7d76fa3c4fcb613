package widget

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/messenger-api/internal/domain"
	"github.com/jhoicas/messenger-api/internal/domain/entity"
	"github.com/jhoicas/messenger-api/internal/domain/repository"
)

// CompanyUseCase resolución get-or-create de empresas y su asociación a
// clientes.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	customers repository.CustomerRepository
	notifier  ActivityNotifier
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository, customers repository.CustomerRepository, notifier ActivityNotifier) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, customers: customers, notifier: notifier}
}

// GetOrCreateCompany busca por nombre exacto; si no existe crea la empresa y
// notifica el alta (mejor esfuerzo). La deduplicación por nombre no está
// respaldada por un índice único: dos llamadas concurrentes pueden crear
// duplicados (ver DESIGN.md); en llamadas secuenciales el ID es estable.
func (uc *CompanyUseCase) GetOrCreateCompany(doc entity.CompanyDoc) (*entity.Company, error) {
	if doc.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companies.GetByName(doc.Name)
	if err != nil {
		return nil, err
	}
	if company != nil {
		return company, nil
	}

	company = &entity.Company{
		ID:       uuid.New().String(),
		Name:     doc.Name,
		Size:     doc.Size,
		Industry: doc.Industry,
		Website:  doc.Website,
		Plan:     doc.Plan,
	}
	if err := uc.companies.Insert(company); err != nil {
		return nil, err
	}
	uc.notifier.CompanyCreated(company.ID)
	return company, nil
}

// AddCompanyToCustomer agrega companyID al conjunto companyIds del cliente.
// Agregar dos veces el mismo ID es idempotente: ni error ni duplicado.
func (uc *CompanyUseCase) AddCompanyToCustomer(customerID, companyID string) (*entity.Customer, error) {
	if err := uc.customers.AddCompany(customerID, companyID); err != nil {
		return nil, err
	}

	customer, err := uc.customers.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
	}
	return customer, nil
}
