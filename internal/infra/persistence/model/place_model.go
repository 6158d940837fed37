package model

import (
	"time"

	"github.com/google/uuid"
)

// PlaceModel mirrors the 'places' table. Coordinates stay NULL until the place is geocoded.
type PlaceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:text"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlaceModel) TableName() string {
	return "places"
}
