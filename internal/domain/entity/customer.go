package entity

import "time"

// Customer representa un contacto del widget de mensajería: puede ser un
// visitante anónimo (IsUser=false) o un usuario identificado.
// El ID es opaco, generado por el servidor e inmutable.
type Customer struct {
	ID          string `bson:"_id" json:"id"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	IsUser      bool   `bson:"isUser" json:"isUser"`
	FirstName   string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName    string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	// CreatedAt se estampa una sola vez al crear; nunca se reescribe.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`

	MessengerData *MessengerData `bson:"messengerData,omitempty" json:"messengerData,omitempty"`
	Location      *Location      `bson:"location,omitempty" json:"location,omitempty"`

	// VisitorContactInfo guarda canales de contacto alternos para visitantes
	// anónimos, separados de los campos de identidad primarios.
	VisitorContactInfo *VisitorContactInfo `bson:"visitorContactInfo,omitempty" json:"visitorContactInfo,omitempty"`

	// CompanyIDs es un conjunto (sin duplicados, orden irrelevante).
	CompanyIDs []string `bson:"companyIds,omitempty" json:"companyIds,omitempty"`

	// URLVisits cuenta visitas por URL; los contadores solo incrementan.
	URLVisits map[string]int `bson:"urlVisits,omitempty" json:"urlVisits,omitempty"`
}

// MessengerData es la ventana de actividad del cliente en el messenger.
// SessionCount nunca decrece.
type MessengerData struct {
	LastSeenAt   time.Time  `bson:"lastSeenAt" json:"lastSeenAt"`
	IsActive     bool       `bson:"isActive" json:"isActive"`
	SessionCount int        `bson:"sessionCount" json:"sessionCount"`
	CustomData   CustomData `bson:"customData,omitempty" json:"customData,omitempty"`
}

// Location es contexto de red/navegador capturado tal cual; este núcleo
// nunca lo infiere por su cuenta.
type Location struct {
	RemoteAddress string `bson:"remoteAddress,omitempty" json:"remoteAddress,omitempty"`
	Country       string `bson:"country,omitempty" json:"country,omitempty"`
	City          string `bson:"city,omitempty" json:"city,omitempty"`
	Region        string `bson:"region,omitempty" json:"region,omitempty"`
	Hostname      string `bson:"hostname,omitempty" json:"hostname,omitempty"`
	Language      string `bson:"language,omitempty" json:"language,omitempty"`
	UserAgent     string `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
}

// VisitorContactInfo canales de contacto de un visitante anónimo.
type VisitorContactInfo struct {
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

// CustomerDoc son los campos básicos de un cliente suministrados por el
// widget al crear o actualizar (sin campos computados ni de sesión).
type CustomerDoc struct {
	Email       string
	Phone       string
	IsUser      bool
	FirstName   string
	LastName    string
	Description string
}
