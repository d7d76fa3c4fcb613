package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messenger-api/internal/application/dto"
	"github.com/jhoicas/messenger-api/internal/application/widget"
	"github.com/jhoicas/messenger-api/internal/domain"
	"github.com/jhoicas/messenger-api/internal/domain/entity"
	"github.com/jhoicas/messenger-api/internal/infrastructure/geo"
	"github.com/jhoicas/messenger-api/pkg/logger"
)

// Geolocator resuelve región/ciudad/país desde una dirección remota.
// Es un colaborador de mejor esfuerzo: si falla, el connect sigue adelante
// sin geolocalización.
type Geolocator interface {
	LocationInfo(remoteAddress string) (geo.LocationInfo, error)
}

// MessengerHandler maneja las peticiones del widget de mensajería (público,
// sin autenticación: los visitantes son anónimos por diseño).
type MessengerHandler struct {
	customers *widget.CustomerUseCase
	geo       Geolocator
	log       *logger.Logger
}

// NewMessengerHandler construye el handler.
func NewMessengerHandler(customers *widget.CustomerUseCase, geolocator Geolocator, log *logger.Logger) *MessengerHandler {
	return &MessengerHandler{customers: customers, geo: geolocator, log: log}
}

// Connect POST /widget/connect
// Resuelve al cliente por email/phone/ID cacheado; si existe lo actualiza con
// los datos frescos del widget, si no lo crea como cliente messenger. Después
// captura la geolocalización y el contexto de navegador en location.
func (h *MessengerHandler) Connect(c *fiber.Ctx) error {
	var in dto.ConnectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	hints := widget.ContactHints{
		Email:            in.Email,
		Phone:            in.Phone,
		CachedCustomerID: in.CachedCustomerID,
	}
	doc := entity.CustomerDoc{
		Email:  in.Email,
		Phone:  in.Phone,
		IsUser: in.IsUser,
	}

	customer, err := h.customers.GetCustomer(hints)
	if err != nil {
		return internalError(c, err)
	}
	if customer != nil {
		customer, err = h.customers.UpdateMessengerCustomer(customer.ID, doc, in.CustomData)
	} else {
		customer, err = h.customers.CreateMessengerCustomer(doc, in.CustomData)
	}
	if err != nil {
		return internalError(c, err)
	}

	location := entity.Location{
		RemoteAddress: c.IP(),
		Hostname:      in.BrowserInfo.Hostname,
		Language:      in.BrowserInfo.Language,
		UserAgent:     in.BrowserInfo.UserAgent,
	}
	if info, geoErr := h.geo.LocationInfo(c.IP()); geoErr == nil {
		location.Region = info.Region
		location.City = info.City
		location.Country = info.Country
	} else {
		h.log.Warn().Err(geoErr).Str("customerId", customer.ID).Msg("geolocalización omitida")
	}
	if _, err := h.customers.UpdateLocation(customer.ID, location); err != nil {
		return internalError(c, err)
	}

	return c.JSON(dto.ConnectResponse{CustomerID: customer.ID})
}

// Heartbeat POST /widget/heartbeat
func (h *MessengerHandler) Heartbeat(c *fiber.Ctx) error {
	var in dto.HeartbeatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId es requerido"})
	}

	customer, err := h.customers.UpdateMessengerSession(in.CustomerID, in.URL)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// Disconnect POST /widget/disconnect
func (h *MessengerHandler) Disconnect(c *fiber.Ctx) error {
	var in dto.DisconnectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId es requerido"})
	}

	customer, err := h.customers.MarkCustomerAsNotActive(in.CustomerID)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// ContactInfo POST /widget/contact-info
func (h *MessengerHandler) ContactInfo(c *fiber.Ctx) error {
	var in dto.ContactInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" || in.Value == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId y value son requeridos"})
	}

	customer, err := h.customers.SaveVisitorContactInfo(in.CustomerID, in.Type, in.Value)
	if err != nil {
		return customerError(c, err)
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// customerError traduce errores de casos de uso de clientes a HTTP.
func customerError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	}
	return internalError(c, err)
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
