package store

import (
	"context"
	"errors"

	"barbershop-app-server/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gorm persists appointments and staff in MySQL. Insertion order maps to
// created_at ordering, so replaced records keep their position.
type Gorm struct {
	DB *gorm.DB
}

// NewGorm wraps a gorm connection in the store interfaces.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{DB: db}
}

// Upsert saves an appointment, creating it when the ID is new.
func (g *Gorm) Upsert(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
		if err := g.DB.WithContext(ctx).Create(&appt).Error; err != nil {
			return models.Appointment{}, err
		}
		return appt, nil
	}

	var existing models.Appointment
	err := g.DB.WithContext(ctx).First(&existing, "id = ?", appt.ID).Error
	switch {
	case err == nil:
		// Preserve CreatedAt so the record keeps its place in the ordering.
		appt.CreatedAt = existing.CreatedAt
		if err := g.DB.WithContext(ctx).Save(&appt).Error; err != nil {
			return models.Appointment{}, err
		}
		return appt, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := g.DB.WithContext(ctx).Create(&appt).Error; err != nil {
			return models.Appointment{}, err
		}
		return appt, nil
	default:
		return models.Appointment{}, err
	}
}

// Remove deletes an appointment. Deleting an absent ID is a no-op.
func (g *Gorm) Remove(ctx context.Context, id string) error {
	return g.DB.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error
}

// All returns every appointment ordered by creation time.
func (g *Gorm) All(ctx context.Context) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := g.DB.WithContext(ctx).Order("created_at asc").Find(&appts).Error
	return appts, err
}

// ListByBarber returns one barber's appointments ordered by creation time.
func (g *Gorm) ListByBarber(ctx context.Context, barberID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := g.DB.WithContext(ctx).Where("barber_id = ?", barberID).Order("created_at asc").Find(&appts).Error
	return appts, err
}

// Get retrieves an appointment by ID.
func (g *Gorm) Get(ctx context.Context, id string) (models.Appointment, bool, error) {
	var appt models.Appointment
	err := g.DB.WithContext(ctx).First(&appt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Appointment{}, false, nil
	}
	if err != nil {
		return models.Appointment{}, false, err
	}
	return appt, true, nil
}

// GetUser returns a staff member by ID.
func (g *Gorm) GetUser(ctx context.Context, id string) (models.User, bool, error) {
	var user models.User
	err := g.DB.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

// ListStaff returns all staff members ordered by creation time.
func (g *Gorm) ListStaff(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := g.DB.WithContext(ctx).Order("created_at asc").Find(&users).Error
	return users, err
}
