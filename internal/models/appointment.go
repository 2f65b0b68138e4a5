package models

import (
	"time"
)

// Appointment represents a scheduled booking of a barber's time by a client.
type Appointment struct {
	BaseModel
	Title      string    `gorm:"size:255;not null" json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	BarberID   string    `gorm:"size:36;index" json:"barberId"`
	ClientName string    `gorm:"size:100;not null" json:"clientName"` // Free text, not a foreign key
	Notes      string    `gorm:"type:text" json:"notes,omitempty"`

	// Relations
	Barber User `gorm:"foreignKey:BarberID" json:"-"`
}
