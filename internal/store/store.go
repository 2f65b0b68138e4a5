package store

import (
	"context"

	"barbershop-app-server/internal/models"
)

// Appointments defines the operations the scheduling layer needs from the
// appointment collection. Both the in-memory demo store and the MySQL-backed
// store satisfy it.
type Appointments interface {
	// Upsert replaces the record with the same ID, keeping its position in
	// the collection, or appends when the ID is new. An empty ID gets a
	// freshly generated one. After Upsert no two records share a non-empty ID.
	Upsert(ctx context.Context, appt models.Appointment) (models.Appointment, error)

	// Remove drops the record with the given ID. Removing an absent ID is a
	// no-op, not an error.
	Remove(ctx context.Context, id string) error

	// All returns every appointment in insertion order. Replaced records keep
	// their original position.
	All(ctx context.Context) ([]models.Appointment, error)

	// ListByBarber returns the appointments assigned to one barber, in
	// insertion order.
	ListByBarber(ctx context.Context, barberID string) ([]models.Appointment, error)

	// Get retrieves a single appointment by ID.
	Get(ctx context.Context, id string) (models.Appointment, bool, error)
}

// Staff resolves the users an appointment can be assigned to.
type Staff interface {
	GetUser(ctx context.Context, id string) (models.User, bool, error)
	ListStaff(ctx context.Context) ([]models.User, error)
}
