// Package seed provides the demo-mode fixtures: a small staff roster, a few
// appointments, and a client directory.
package seed

import (
	"context"
	"time"

	"barbershop-app-server/internal/clients"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/store"
)

// Staff returns the demo roster: one owner and two barbers.
func Staff() []models.User {
	return []models.User{
		{BaseModel: models.BaseModel{ID: "1"}, Name: "Owner Admin", Email: "owner@barbershop.local", Role: models.RoleOwner},
		{BaseModel: models.BaseModel{ID: "2"}, Name: "Barber John", Email: "john@barbershop.local", Role: models.RoleBarber, Color: "#22c55e"},
		{BaseModel: models.BaseModel{ID: "3"}, Name: "Barber Jane", Email: "jane@barbershop.local", Role: models.RoleBarber, Color: "#f59e0b"},
	}
}

// Appointments returns a handful of bookings spread over two days.
func Appointments() []models.Appointment {
	return []models.Appointment{
		{
			BaseModel:  models.BaseModel{ID: "a1"},
			Title:      "Haircut - Mike",
			Start:      time.Date(2024, 6, 10, 10, 0, 0, 0, time.Local),
			End:        time.Date(2024, 6, 10, 10, 30, 0, 0, time.Local),
			BarberID:   "2",
			ClientName: "Mike",
			Notes:      "Short fade",
		},
		{
			BaseModel:  models.BaseModel{ID: "a2"},
			Title:      "Beard Trim - Alex",
			Start:      time.Date(2024, 6, 10, 11, 0, 0, 0, time.Local),
			End:        time.Date(2024, 6, 10, 11, 20, 0, 0, time.Local),
			BarberID:   "3",
			ClientName: "Alex",
		},
		{
			BaseModel:  models.BaseModel{ID: "a3"},
			Title:      "Haircut - Sam",
			Start:      time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local),
			End:        time.Date(2024, 6, 11, 9, 30, 0, 0, time.Local),
			BarberID:   "2",
			ClientName: "Sam",
			Notes:      "Layered",
		},
	}
}

// Clients returns the demo client directory.
func Clients() []models.Client {
	return []models.Client{
		{BaseModel: models.BaseModel{ID: "c1"}, Name: "Juan Pérez", Phone: "+34 600 123 456", Email: "juan.perez@email.com"},
		{BaseModel: models.BaseModel{ID: "c2"}, Name: "María García", Phone: "+34 600 234 567", Email: "maria.garcia@email.com"},
		{BaseModel: models.BaseModel{ID: "c3"}, Name: "Roberto Silva", Phone: "+34 600 345 678", Email: "roberto.silva@email.com"},
		{BaseModel: models.BaseModel{ID: "c4"}, Name: "Ana López", Phone: "+34 600 456 789", Email: "ana.lopez@email.com"},
		{BaseModel: models.BaseModel{ID: "c5"}, Name: "Carlos Ruiz", Phone: "+34 600 567 890", Email: "carlos.ruiz@email.com"},
	}
}

// Memory builds a fully seeded in-memory store and client directory.
func Memory() (*store.Memory, *clients.Directory) {
	mem := store.NewMemory()
	for _, u := range Staff() {
		mem.PutUser(u)
	}
	for _, a := range Appointments() {
		if _, err := mem.Upsert(context.Background(), a); err != nil {
			panic(err)
		}
	}
	return mem, clients.NewDirectory(Clients()...)
}
