package models

// Client is a directory entry used to pre-fill appointment forms.
// Clients do not log in and appointments reference them by name only.
type Client struct {
	BaseModel
	BarbershopID string `gorm:"size:36;index" json:"barbershopId"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Phone        string `gorm:"size:20" json:"phone,omitempty"`
	Email        string `gorm:"size:100" json:"email,omitempty"`
}
