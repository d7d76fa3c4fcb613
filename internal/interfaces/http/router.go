package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messenger-api/internal/application/widget"
	"github.com/jhoicas/messenger-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *widget.CustomerUseCase
	CompanyUC  *widget.CompanyUseCase
	Geo        Geolocator
	Log        *logger.Logger
}

// Router registra las rutas del widget (públicas: el messenger atiende
// visitantes anónimos).
func Router(app *fiber.App, deps RouterDeps) {
	w := app.Group("/widget")

	messengerHandler := NewMessengerHandler(deps.CustomerUC, deps.Geo, deps.Log)
	w.Post("/connect", messengerHandler.Connect)
	w.Post("/heartbeat", messengerHandler.Heartbeat)
	w.Post("/disconnect", messengerHandler.Disconnect)
	w.Post("/contact-info", messengerHandler.ContactInfo)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	w.Post("/company", companyHandler.Attach)
}
