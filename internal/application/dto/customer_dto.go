package dto

import (
	"time"

	"github.com/jhoicas/messenger-api/internal/domain/entity"
)

// BrowserInfo contexto de navegador que el widget reporta en el connect.
type BrowserInfo struct {
	URL       string `json:"url"`
	Hostname  string `json:"hostname"`
	Language  string `json:"language"`
	UserAgent string `json:"userAgent"`
}

// ConnectRequest entrada de POST /widget/connect (messengerConnect).
type ConnectRequest struct {
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	CachedCustomerID string            `json:"cachedCustomerId"`
	IsUser           bool              `json:"isUser"`
	CustomData       entity.CustomData `json:"customData"`
	BrowserInfo      BrowserInfo       `json:"browserInfo"`
}

// ConnectResponse salida del connect: el ID que el widget debe cachear.
type ConnectResponse struct {
	CustomerID string `json:"customerId"`
}

// HeartbeatRequest entrada de POST /widget/heartbeat (updateSession).
type HeartbeatRequest struct {
	CustomerID string `json:"customerId"`
	URL        string `json:"url"`
}

// DisconnectRequest entrada de POST /widget/disconnect.
type DisconnectRequest struct {
	CustomerID string `json:"customerId"`
}

// ContactInfoRequest entrada de POST /widget/contact-info
// (saveCustomerGetNotified). Type es "email" o "phone".
type ContactInfoRequest struct {
	CustomerID string `json:"customerId"`
	Type       string `json:"type"`
	Value      string `json:"value"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID                 string                     `json:"id"`
	Email              string                     `json:"email,omitempty"`
	Phone              string                     `json:"phone,omitempty"`
	IsUser             bool                       `json:"isUser"`
	FirstName          string                     `json:"firstName,omitempty"`
	LastName           string                     `json:"lastName,omitempty"`
	Description        string                     `json:"description,omitempty"`
	CreatedAt          time.Time                  `json:"createdAt"`
	MessengerData      *entity.MessengerData      `json:"messengerData,omitempty"`
	Location           *entity.Location           `json:"location,omitempty"`
	VisitorContactInfo *entity.VisitorContactInfo `json:"visitorContactInfo,omitempty"`
	CompanyIDs         []string                   `json:"companyIds,omitempty"`
	URLVisits          map[string]int             `json:"urlVisits,omitempty"`
}

// NewCustomerResponse mapea la entidad a su representación HTTP.
func NewCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                 c.ID,
		Email:              c.Email,
		Phone:              c.Phone,
		IsUser:             c.IsUser,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Description:        c.Description,
		CreatedAt:          c.CreatedAt,
		MessengerData:      c.MessengerData,
		Location:           c.Location,
		VisitorContactInfo: c.VisitorContactInfo,
		CompanyIDs:         c.CompanyIDs,
		URLVisits:          c.URLVisits,
	}
}
