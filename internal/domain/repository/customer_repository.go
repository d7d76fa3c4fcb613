package repository

import (
	"time"

	"github.com/jhoicas/messenger-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Los métodos Get* devuelven (nil, nil) cuando no hay coincidencia: un miss
// es un valor, no un error. Cada escritura parcial es atómica a nivel de
// documento ($set/$inc/$addToSet); no hay transacciones entre documentos.
type CustomerRepository interface {
	Insert(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	GetByPhone(phone string) (*entity.Customer, error)

	// UpdateMessengerData aplica un $set parcial: los campos no vacíos de doc
	// más messengerData.customData. No es una sobreescritura completa.
	UpdateMessengerData(id string, doc entity.CustomerDoc, customData entity.CustomData) error

	SetActive(id string) error
	SetInactive(id string, lastSeenAt time.Time) error

	// RecordSession siempre actualiza lastSeenAt/isActive; cuando newSession
	// es true además incrementa sessionCount y persiste el mapa urlVisits
	// completo ya actualizado.
	RecordSession(id string, lastSeenAt time.Time, newSession bool, urlVisits map[string]int) error

	// SetLocation sobreescribe el sub-registro location completo (sin merge).
	SetLocation(id string, location entity.Location) error

	SetVisitorEmail(id string, email string) error
	SetVisitorPhone(id string, phone string) error

	// AddCompany agrega companyID al conjunto companyIds (idempotente).
	AddCompany(id string, companyID string) error
}
