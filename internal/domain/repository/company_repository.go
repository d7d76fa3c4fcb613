package repository

import "github.com/jhoicas/messenger-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company.
// GetByName devuelve (nil, nil) si no existe empresa con ese nombre exacto.
type CompanyRepository interface {
	Insert(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByName(name string) (*entity.Company, error)
}
