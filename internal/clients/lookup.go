package clients

import (
	"strings"
	"sync"

	"barbershop-app-server/internal/models"

	"github.com/google/uuid"
)

// DefaultLimit bounds the suggestion list shown for an empty query, so
// focusing the field never dumps the whole directory.
const DefaultLimit = 10

// Selection is what a lookup hands back to the appointment form when an
// entry is picked.
type Selection struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Directory is the in-memory client directory backing the search-and-select
// helper. Appointments reference clients by name only, so the directory is
// lookup-only.
type Directory struct {
	mu   sync.RWMutex
	list []models.Client
}

// NewDirectory builds a directory from seed entries, keeping their order.
func NewDirectory(seed ...models.Client) *Directory {
	d := &Directory{list: make([]models.Client, 0, len(seed))}
	d.list = append(d.list, seed...)
	return d
}

// Add registers a client at the end of the directory and returns it with its
// generated ID.
func (d *Directory) Add(c models.Client) models.Client {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	d.list = append(d.list, c)
	return c
}

// Search returns clients whose name, phone, or email contains the query as a
// case-insensitive substring, in directory order. An empty query returns at
// most DefaultLimit entries.
func (d *Directory) Search(query string) []models.Client {
	d.mu.RLock()
	defer d.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		n := len(d.list)
		if n > DefaultLimit {
			n = DefaultLimit
		}
		res := make([]models.Client, n)
		copy(res, d.list[:n])
		return res
	}

	var res []models.Client
	for _, c := range d.list {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Phone), query) ||
			strings.Contains(strings.ToLower(c.Email), query) {
			res = append(res, c)
		}
	}
	return res
}

// Select resolves an entry by ID and returns the fields handed off to the
// caller. The second return value is false for an unknown ID.
func (d *Directory) Select(id string) (Selection, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.list {
		if c.ID == id {
			return Selection{Name: c.Name, Phone: c.Phone}, true
		}
	}
	return Selection{}, false
}

// Len reports the directory size.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.list)
}
