package models

import "time"

// Project is the record kept in sync between the remote store and the local
// cache. ID is assigned by the server and never changes afterwards.
type Project struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,min=3"`
	Description string  `json:"description" validate:"required"`
	Budget      float64 `json:"budget" validate:"gt=0"`
	IsActive    bool    `json:"isActive"`

	ImageURL         string     `json:"imageUrl,omitempty"`
	ContractTypeID   int64      `json:"contractTypeId,omitempty"`
	ContractSignedOn *time.Time `json:"contractSignedOn,omitempty"`
}

// IsNew reports whether the project has not been assigned an id by the
// server yet.
func (p Project) IsNew() bool {
	return p.ID == 0
}
