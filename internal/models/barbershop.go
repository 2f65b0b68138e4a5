package models

// Barbershop represents a registered shop. Each shop has exactly one owner
// and any number of barbers attached through User.BarbershopID.
type Barbershop struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255;not null" json:"address"`
	OwnerID string `gorm:"size:36;index" json:"ownerId"`

	Owner User   `gorm:"foreignKey:OwnerID" json:"-"`
	Staff []User `gorm:"foreignKey:BarbershopID" json:"-"`
}
