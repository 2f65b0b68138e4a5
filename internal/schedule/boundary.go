package schedule

import (
	"context"

	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/store"
)

// StoreBoundary adapts an appointment store to the form's save/delete
// boundary.
type StoreBoundary struct {
	Store store.Appointments
}

func (b StoreBoundary) Save(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	return b.Store.Upsert(ctx, appt)
}

func (b StoreBoundary) Delete(ctx context.Context, id string) error {
	return b.Store.Remove(ctx, id)
}
