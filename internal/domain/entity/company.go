package entity

import "time"

// Company representa una empresa asociada a uno o más clientes.
// Name actúa como llave natural de deduplicación en el get-or-create
// (mejor esfuerzo, sin índice único; ver DESIGN.md).
type Company struct {
	ID       string `bson:"_id" json:"id"`
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	Size     int    `bson:"size,omitempty" json:"size,omitempty"`
	Industry string `bson:"industry,omitempty" json:"industry,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
	Plan     string `bson:"plan,omitempty" json:"plan,omitempty"`

	LastSeenAt   time.Time `bson:"lastSeenAt,omitempty" json:"lastSeenAt,omitempty"`
	SessionCount int       `bson:"sessionCount,omitempty" json:"sessionCount,omitempty"`

	TagIDs []string `bson:"tagIds,omitempty" json:"tagIds,omitempty"`
}

// CompanyDoc campos de empresa suministrados por el widget.
type CompanyDoc struct {
	Name     string
	Size     int
	Industry string
	Website  string
	Plan     string
}
