package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jhoicas/messenger-api/internal/domain/entity"
	"github.com/jhoicas/messenger-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación de CompanyRepository sobre la colección companies.
// No hay índice único sobre name: la deduplicación del get-or-create es de
// mejor esfuerzo (ver DESIGN.md).
type CompanyRepo struct {
	col *mongo.Collection
}

// NewCompanyRepository construye el adaptador.
func NewCompanyRepository(db *mongo.Database) *CompanyRepo {
	return &CompanyRepo{col: db.Collection("companies")}
}

// Insert persiste una nueva empresa.
func (r *CompanyRepo) Insert(company *entity.Company) error {
	_, err := r.col.InsertOne(context.Background(), company)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.findOne(bson.M{"_id": id})
}

// GetByName obtiene una empresa por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByName(name string) (*entity.Company, error) {
	return r.findOne(bson.M{"name": name})
}

func (r *CompanyRepo) findOne(filter bson.M) (*entity.Company, error) {
	var c entity.Company
	err := r.col.FindOne(context.Background(), filter).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}
