package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/messenger-api/internal/domain/entity"
	"github.com/jhoicas/messenger-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository sobre la colección
// customers. La seguridad ante concurrencia viene de la atomicidad por
// documento de los operadores $set/$inc/$addToSet, no de transacciones.
type CustomerRepo struct {
	col *mongo.Collection
}

// NewCustomerRepository construye el adaptador.
func NewCustomerRepository(db *mongo.Database) *CustomerRepo {
	return &CustomerRepo{col: db.Collection("customers")}
}

// Insert persiste un nuevo cliente.
func (r *CustomerRepo) Insert(customer *entity.Customer) error {
	_, err := r.col.InsertOne(context.Background(), customer)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.findOne(bson.M{"_id": id})
}

// GetByEmail obtiene un cliente por email exacto. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	return r.findOne(bson.M{"email": email})
}

// GetByPhone obtiene un cliente por teléfono exacto. Devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByPhone(phone string) (*entity.Customer, error) {
	return r.findOne(bson.M{"phone": phone})
}

func (r *CustomerRepo) findOne(filter bson.M) (*entity.Customer, error) {
	var c entity.Customer
	err := r.col.FindOne(context.Background(), filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// UpdateMessengerData aplica un $set parcial con los campos no vacíos de doc
// y el customData anidado. No toca createdAt ni los contadores de sesión.
func (r *CustomerRepo) UpdateMessengerData(id string, doc entity.CustomerDoc, customData entity.CustomData) error {
	set := bson.M{"messengerData.customData": customData}
	if doc.Email != "" {
		set["email"] = doc.Email
	}
	if doc.Phone != "" {
		set["phone"] = doc.Phone
	}
	if doc.FirstName != "" {
		set["firstName"] = doc.FirstName
	}
	if doc.LastName != "" {
		set["lastName"] = doc.LastName
	}
	if doc.Description != "" {
		set["description"] = doc.Description
	}
	if doc.IsUser {
		set["isUser"] = true
	}
	return r.updateByID(id, bson.M{"$set": set}, "update messenger data")
}

// SetActive marca al cliente como activo.
func (r *CustomerRepo) SetActive(id string) error {
	return r.updateByID(id, bson.M{"$set": bson.M{"messengerData.isActive": true}}, "set active")
}

// SetInactive marca al cliente como inactivo y estampa lastSeenAt.
func (r *CustomerRepo) SetInactive(id string, lastSeenAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"messengerData.isActive":   false,
		"messengerData.lastSeenAt": lastSeenAt,
	}}
	return r.updateByID(id, update, "set inactive")
}

// RecordSession actualiza la ventana de actividad. Con newSession además
// incrementa sessionCount ($inc atómico) y persiste el mapa urlVisits
// completo ya incrementado.
func (r *CustomerRepo) RecordSession(id string, lastSeenAt time.Time, newSession bool, urlVisits map[string]int) error {
	set := bson.M{
		"messengerData.lastSeenAt": lastSeenAt,
		"messengerData.isActive":   true,
	}
	update := bson.M{"$set": set}
	if newSession {
		update["$inc"] = bson.M{"messengerData.sessionCount": 1}
		set["urlVisits"] = urlVisits
	}
	return r.updateByID(id, update, "record session")
}

// SetLocation sobreescribe el sub-registro location completo.
func (r *CustomerRepo) SetLocation(id string, location entity.Location) error {
	return r.updateByID(id, bson.M{"$set": bson.M{"location": location}}, "set location")
}

// SetVisitorEmail guarda el email de contacto del visitante.
func (r *CustomerRepo) SetVisitorEmail(id string, email string) error {
	return r.updateByID(id, bson.M{"$set": bson.M{"visitorContactInfo.email": email}}, "set visitor email")
}

// SetVisitorPhone guarda el teléfono de contacto del visitante.
func (r *CustomerRepo) SetVisitorPhone(id string, phone string) error {
	return r.updateByID(id, bson.M{"$set": bson.M{"visitorContactInfo.phone": phone}}, "set visitor phone")
}

// AddCompany agrega companyID al conjunto companyIds. $addToSet garantiza
// la unicidad: agregar dos veces el mismo ID es un no-op.
func (r *CustomerRepo) AddCompany(id string, companyID string) error {
	return r.updateByID(id, bson.M{"$addToSet": bson.M{"companyIds": companyID}}, "add company")
}

func (r *CustomerRepo) updateByID(id string, update bson.M, op string) error {
	_, err := r.col.UpdateByID(context.Background(), id, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
