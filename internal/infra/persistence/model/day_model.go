package model

import (
	"time"

	"github.com/google/uuid"
)

// DayModel mirrors the 'days' table. TripID references trips.id.
type DayModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TripID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_days_trip_seq"`
	Seq       int        `gorm:"not null;uniqueIndex:idx_days_trip_seq"`
	Date      *time.Time `gorm:"type:date"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Stops []StopModel `gorm:"foreignKey:DayID"`
}

// TableName explicitly sets the table name for GORM.
func (DayModel) TableName() string {
	return "days"
}

// StopModel mirrors the 'stops' table. Seq is unique within a day.
type StopModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DayID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stops_day_seq"`
	PlaceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq       int       `gorm:"not null;uniqueIndex:idx_stops_day_seq"`
	Kind      string    `gorm:"type:varchar(10);not null;default:'via'"`
	Fixed     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Place PlaceModel `gorm:"foreignKey:PlaceID"`
}

// TableName explicitly sets the table name for GORM.
func (StopModel) TableName() string {
	return "stops"
}
