package store

import (
	"context"
	"sync"

	"barbershop-app-server/internal/models"

	"github.com/google/uuid"
)

// Memory keeps appointments and staff in-process. It backs demo mode and
// tests; a session's data does not survive a restart.
type Memory struct {
	mu     sync.RWMutex
	appts  map[string]models.Appointment
	order  []string // appointment IDs in insertion order
	users  map[string]models.User
	roster []string // user IDs in insertion order
}

// NewMemory initializes an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		appts: make(map[string]models.Appointment),
		users: make(map[string]models.User),
	}
}

// Upsert stores or replaces an appointment, tracking insertion order.
// Replaced records keep their original position.
func (m *Memory) Upsert(ctx context.Context, appt models.Appointment) (models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if _, exists := m.appts[appt.ID]; !exists {
		m.order = append(m.order, appt.ID)
	}
	m.appts[appt.ID] = appt
	return appt, nil
}

// Remove drops an appointment. Absent IDs are silently ignored.
func (m *Memory) Remove(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.appts[id]; !ok {
		return nil
	}
	delete(m.appts, id)
	filtered := m.order[:0]
	for _, item := range m.order {
		if item != id {
			filtered = append(filtered, item)
		}
	}
	m.order = filtered
	return nil
}

// All returns appointments in insertion order.
func (m *Memory) All(ctx context.Context) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Appointment, 0, len(m.order))
	for _, id := range m.order {
		if a, ok := m.appts[id]; ok {
			res = append(res, a)
		}
	}
	return res, nil
}

// ListByBarber returns appointments assigned to one barber, in insertion order.
func (m *Memory) ListByBarber(ctx context.Context, barberID string) ([]models.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.Appointment, 0, len(m.order))
	for _, id := range m.order {
		if a, ok := m.appts[id]; ok && a.BarberID == barberID {
			res = append(res, a)
		}
	}
	return res, nil
}

// Get retrieves an appointment by ID.
func (m *Memory) Get(ctx context.Context, id string) (models.Appointment, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.appts[id]
	return a, ok, nil
}

// PutUser registers a staff member in the demo roster.
func (m *Memory) PutUser(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[u.ID]; !exists {
		m.roster = append(m.roster, u.ID)
	}
	m.users[u.ID] = u
}

// GetUser returns a staff member by ID.
func (m *Memory) GetUser(ctx context.Context, id string) (models.User, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	return u, ok, nil
}

// ListStaff returns all staff members in insertion order.
func (m *Memory) ListStaff(ctx context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res := make([]models.User, 0, len(m.roster))
	for _, id := range m.roster {
		if u, ok := m.users[id]; ok {
			res = append(res, u)
		}
	}
	return res, nil
}
