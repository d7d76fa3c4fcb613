package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messenger-api/internal/application/dto"
	"github.com/jhoicas/messenger-api/internal/application/widget"
	"github.com/jhoicas/messenger-api/internal/domain"
	"github.com/jhoicas/messenger-api/internal/domain/entity"
)

// CompanyHandler asociación de empresas reportadas por la página embebida.
type CompanyHandler struct {
	uc *widget.CompanyUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *widget.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Attach POST /widget/company
// Resuelve la empresa por nombre (get-or-create) y la agrega al conjunto
// companyIds del cliente; repetir la operación es idempotente.
func (h *CompanyHandler) Attach(c *fiber.Ctx) error {
	var in dto.AttachCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId es requerido"})
	}

	company, err := h.uc.GetOrCreateCompany(entity.CompanyDoc{
		Name:     in.Company.Name,
		Size:     in.Company.Size,
		Industry: in.Company.Industry,
		Website:  in.Company.Website,
		Plan:     in.Company.Plan,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company.name es requerido"})
		}
		return internalError(c, err)
	}

	customer, err := h.uc.AddCompanyToCustomer(in.CustomerID, company.ID)
	if err != nil {
		return customerError(c, err)
	}

	return c.JSON(dto.AttachCompanyResponse{
		CompanyID:  company.ID,
		CompanyIDs: customer.CompanyIDs,
	})
}
