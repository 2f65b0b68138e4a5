package models

import (
	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleOwner  Role = "owner"
	RoleBarber Role = "barber"
)

// User represents a staff member (the barbershop owner or a barber).
type User struct {
	BaseModel
	BarbershopID string `gorm:"size:36;index" json:"barbershopId"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password     string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	Name         string `gorm:"size:100;not null" json:"name"`
	Role         Role   `gorm:"size:20;default:'barber'" json:"role"`
	Color        string `gorm:"size:20" json:"color,omitempty"` // Display color for calendar events
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
	Appointments  []Appointment  `gorm:"foreignKey:BarberID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID           string `json:"id"`
	BarbershopID string `json:"barbershopId,omitempty"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	Color        string `json:"color,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:           u.ID,
		BarbershopID: u.BarbershopID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		Color:        u.Color,
		PhoneNumber:  u.PhoneNumber,
		AvatarURL:    u.AvatarURL,
	}
}
