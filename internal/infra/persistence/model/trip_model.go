package model

import (
	"time"

	"github.com/google/uuid"
)

// TripModel mirrors the 'trips' table.
type TripModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Destination string     `gorm:"type:varchar(255)"`
	StartDate   *time.Time `gorm:"type:date;index"`
	EndDate     *time.Time `gorm:"type:date"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Days []DayModel `gorm:"foreignKey:TripID"`
}

// TableName explicitly sets the table name for GORM.
func (TripModel) TableName() string {
	return "trips"
}
