package schedule

import (
	"time"

	"barbershop-app-server/internal/models"
)

// View is the calendar grid granularity.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// DefaultDuration is the length of a new appointment created from a single
// slot click.
const DefaultDuration = time.Hour

// defaultEventColor is used when the assigned barber has no display color.
const defaultEventColor = "#3b82f6"

// Event is one appointment prepared for rendering on the grid.
type Event struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Color      string    `json:"color"`
	BarberName string    `json:"barberName,omitempty"`
	ClientName string    `json:"clientName,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}

// Hours bound the day view (e.g. 8 to 20 for an 08:00-20:00 grid).
type Hours struct {
	Start int
	End   int
}

// Calendar renders the role-filtered appointment set and translates grid
// interactions into form-open intents. It keeps no copy of appointment data
// beyond what it was constructed with; callers rebuild it after every store
// change.
type Calendar struct {
	appointments []models.Appointment
	barbers      []models.User
	user         models.User
	hours        Hours
}

// NewCalendar builds a calendar for the active user. The appointment list and
// staff roster are filtered by role before anything is rendered.
func NewCalendar(user models.User, appointments []models.Appointment, staff []models.User, hours Hours) *Calendar {
	return &Calendar{
		appointments: VisibleAppointments(appointments, user),
		barbers:      VisibleBarbers(staff, user),
		user:         user,
		hours:        hours,
	}
}

// Barbers returns the assignable staff for the active user.
func (c *Calendar) Barbers() []models.User {
	return c.barbers
}

// Events returns all visible appointments as renderable events, labeled with
// the assigned barber's color so an owner can tell barbers apart at a glance.
func (c *Calendar) Events() []Event {
	events := make([]Event, 0, len(c.appointments))
	for _, a := range c.appointments {
		events = append(events, c.event(a))
	}
	return events
}

// EventsIn returns the events overlapping [from, to).
func (c *Calendar) EventsIn(from, to time.Time) []Event {
	var events []Event
	for _, a := range c.appointments {
		if a.Start.Before(to) && a.End.After(from) {
			events = append(events, c.event(a))
		}
	}
	return events
}

func (c *Calendar) event(a models.Appointment) Event {
	ev := Event{
		ID:         a.ID,
		Title:      a.Title,
		Start:      a.Start,
		End:        a.End,
		Color:      defaultEventColor,
		ClientName: a.ClientName,
		Notes:      a.Notes,
	}
	for _, b := range c.barbers {
		if b.ID == a.BarberID {
			ev.BarberName = b.Name
			if b.Color != "" {
				ev.Color = b.Color
			}
			break
		}
	}
	return ev
}

// SlotIntent is the create intent for a click on an empty slot: the draft is
// pre-filled with the clicked time and the fixed default duration.
func (c *Calendar) SlotIntent(at time.Time) Draft {
	draft := Draft{
		Start: at,
		End:   at.Add(DefaultDuration),
	}
	if c.user.Role == models.RoleBarber {
		draft.BarberID = c.user.ID
	} else if len(c.barbers) > 0 {
		draft.BarberID = c.barbers[0].ID
	}
	return draft
}

// RangeIntent is the create intent for a drag-selected time range. It is
// anchored at the selection's start, equivalent to a slot click there.
func (c *Calendar) RangeIntent(start, end time.Time) Draft {
	return c.SlotIntent(start)
}

// EventIntent is the edit intent for a click on an existing event. The second
// return value is false when no visible appointment has that ID.
func (c *Calendar) EventIntent(id string) (Draft, bool) {
	for _, a := range c.appointments {
		if a.ID == id {
			return DraftFromAppointment(a), true
		}
	}
	return Draft{}, false
}

// Window returns the [start, end) range the given view shows around anchor.
// Weeks start on Sunday, matching the grid.
func Window(view View, anchor time.Time) (time.Time, time.Time) {
	midnight := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	switch view {
	case ViewMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 1, 0)
	case ViewWeek:
		start := midnight.AddDate(0, 0, -int(midnight.Weekday()))
		return start, start.AddDate(0, 0, 7)
	default:
		return midnight, midnight.AddDate(0, 0, 1)
	}
}

// DayWindow returns the visible slice of a single day, clamped to the
// configured opening hours.
func (c *Calendar) DayWindow(anchor time.Time) (time.Time, time.Time) {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	return day.Add(time.Duration(c.hours.Start) * time.Hour), day.Add(time.Duration(c.hours.End) * time.Hour)
}
