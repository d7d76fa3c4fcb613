package widget

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/messenger-api/internal/domain"
	"github.com/jhoicas/messenger-api/internal/domain/entity"
	"github.com/jhoicas/messenger-api/internal/domain/repository"
)

// sessionCooldown es la ventana de enfriamiento: heartbeats separados por
// menos de este umbral no incrementan sessionCount ni urlVisits, solo
// refrescan lastSeenAt. Evita inflar contadores con pings rápidos.
const sessionCooldown = 6 * time.Second

// ContactHints son las pistas de identidad para resolver un cliente
// existente. La prioridad es estricta: email, luego phone, luego el ID
// cacheado por el widget.
type ContactHints struct {
	Email            string
	Phone            string
	CachedCustomerID string
}

// CustomerUseCase resolución de identidad, ciclo de vida y sesión de clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	notifier ActivityNotifier
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, notifier ActivityNotifier) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, notifier: notifier}
}

// GetCustomer resuelve un cliente existente a partir de pistas parciales.
// Se hace exactamente una búsqueda por la primera pista presente; las demás
// se ignoran aunque vengan. Sin pistas devuelve (nil, nil) sin consultar
// almacenamiento. Un miss es un valor, no un error.
func (uc *CustomerUseCase) GetCustomer(hints ContactHints) (*entity.Customer, error) {
	if hints.Email != "" {
		return uc.repo.GetByEmail(hints.Email)
	}
	if hints.Phone != "" {
		return uc.repo.GetByPhone(hints.Phone)
	}
	if hints.CachedCustomerID != "" {
		return uc.repo.GetByID(hints.CachedCustomerID)
	}
	return nil, nil
}

// CreateCustomer crea un cliente plano. Estampa createdAt al momento actual
// y notifica el alta al registro de actividad (mejor esfuerzo).
func (uc *CustomerUseCase) CreateCustomer(doc entity.CustomerDoc) (*entity.Customer, error) {
	return uc.create(doc, nil)
}

// CreateMessengerCustomer crea un cliente originado en el messenger.
// Normaliza primero los campos de perfil embebidos en customData y deja el
// resto dentro de messengerData.customData; la sesión inicia en 1 y activa.
func (uc *CustomerUseCase) CreateMessengerCustomer(doc entity.CustomerDoc, customData entity.CustomData) (*entity.Customer, error) {
	known, remaining := entity.ExtractKnownFields(customData)
	known.ApplyTo(&doc)

	md := &entity.MessengerData{
		LastSeenAt:   time.Now(),
		IsActive:     true,
		SessionCount: 1,
		CustomData:   remaining,
	}
	return uc.create(doc, md)
}

func (uc *CustomerUseCase) create(doc entity.CustomerDoc, md *entity.MessengerData) (*entity.Customer, error) {
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		Email:         doc.Email,
		Phone:         doc.Phone,
		IsUser:        doc.IsUser,
		FirstName:     doc.FirstName,
		LastName:      doc.LastName,
		Description:   doc.Description,
		CreatedAt:     time.Now(),
		MessengerData: md,
	}
	if err := uc.repo.Insert(customer); err != nil {
		return nil, err
	}
	uc.notifier.CustomerCreated(customer.ID)
	return customer, nil
}

// UpdateMessengerCustomer normaliza customData, aplica un $set parcial con
// los campos de doc más messengerData.customData, y devuelve el registro
// releído. El cliente debe existir.
func (uc *CustomerUseCase) UpdateMessengerCustomer(id string, doc entity.CustomerDoc, customData entity.CustomData) (*entity.Customer, error) {
	known, remaining := entity.ExtractKnownFields(customData)
	known.ApplyTo(&doc)

	if err := uc.repo.UpdateMessengerData(id, doc, remaining); err != nil {
		return nil, err
	}
	return uc.reload(id)
}

// GetOrCreateCustomer resuelve por pistas; si hay coincidencia la devuelve
// tal cual (sin merge de campos nuevos); si no, crea un cliente plano con un
// ID fresco generado por el servidor (el ID cacheado obsoleto se descarta).
func (uc *CustomerUseCase) GetOrCreateCustomer(hints ContactHints, doc entity.CustomerDoc) (*entity.Customer, error) {
	customer, err := uc.GetCustomer(hints)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		return customer, nil
	}
	return uc.CreateCustomer(doc)
}

// MarkCustomerAsActive marca al cliente como activo.
func (uc *CustomerUseCase) MarkCustomerAsActive(id string) (*entity.Customer, error) {
	if err := uc.repo.SetActive(id); err != nil {
		return nil, err
	}
	return uc.reload(id)
}

// MarkCustomerAsNotActive marca al cliente como inactivo y estampa lastSeenAt.
func (uc *CustomerUseCase) MarkCustomerAsNotActive(id string) (*entity.Customer, error) {
	if err := uc.repo.SetInactive(id, time.Now()); err != nil {
		return nil, err
	}
	return uc.reload(id)
}

// UpdateMessengerSession procesa un heartbeat. Siempre refresca
// lastSeenAt/isActive; si pasó más de sessionCooldown desde el último
// heartbeat, además cuenta una sesión nueva y una visita a la URL.
//
// La lectura y la escritura condicional no son atómicas entre llamadas
// concurrentes para el mismo cliente: dos heartbeats simultáneos pueden
// contar la sesión dos veces. Es una carrera tolerada (ver DESIGN.md);
// cada incremento en sí es un $inc atómico.
func (uc *CustomerUseCase) UpdateMessengerSession(id, url string) (*entity.Customer, error) {
	customer, err := uc.require(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newSession := customer.MessengerData == nil ||
		now.Sub(customer.MessengerData.LastSeenAt) > sessionCooldown

	var visits map[string]int
	if newSession {
		visits = make(map[string]int, len(customer.URLVisits)+1)
		for u, n := range customer.URLVisits {
			visits[u] = n
		}
		visits[url]++
	}

	if err := uc.repo.RecordSession(id, now, newSession, visits); err != nil {
		return nil, err
	}
	return uc.reload(id)
}

// UpdateLocation sobreescribe el sub-registro location completo (sin merge).
func (uc *CustomerUseCase) UpdateLocation(id string, location entity.Location) (*entity.Customer, error) {
	if err := uc.repo.SetLocation(id, location); err != nil {
		return nil, err
	}
	return uc.reload(id)
}

// SaveVisitorContactInfo guarda el canal de contacto del visitante.
// Se toca exactamente un campo por llamada; un type desconocido no escribe
// nada y devuelve el registro sin cambios.
func (uc *CustomerUseCase) SaveVisitorContactInfo(id, contactType, value string) (*entity.Customer, error) {
	switch contactType {
	case "email":
		if err := uc.repo.SetVisitorEmail(id, value); err != nil {
			return nil, err
		}
	case "phone":
		if err := uc.repo.SetVisitorPhone(id, value); err != nil {
			return nil, err
		}
	}
	return uc.reload(id)
}

// require lee el cliente y convierte un miss en ErrNotFound: la operación
// exige un registro existente.
func (uc *CustomerUseCase) require(id string) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return customer, nil
}

// reload relee el registro tras una escritura parcial para devolver el
// estado actual.
func (uc *CustomerUseCase) reload(id string) (*entity.Customer, error) {
	return uc.require(id)
}
