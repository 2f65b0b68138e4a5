package schedule

import (
	"barbershop-app-server/internal/models"
)

// VisibleAppointments returns the subset of appointments the active user may
// see. Owners see the full list unchanged; barbers see only their own.
func VisibleAppointments(all []models.Appointment, user models.User) []models.Appointment {
	switch user.Role {
	case models.RoleOwner:
		return all
	case models.RoleBarber:
		visible := make([]models.Appointment, 0, len(all))
		for _, a := range all {
			if a.BarberID == user.ID {
				visible = append(visible, a)
			}
		}
		return visible
	default:
		return nil
	}
}

// VisibleBarbers returns the staff members the active user may assign
// appointments to. Owners get every barber (the owner itself is not
// assignable); a barber gets only itself.
func VisibleBarbers(staff []models.User, user models.User) []models.User {
	switch user.Role {
	case models.RoleOwner:
		barbers := make([]models.User, 0, len(staff))
		for _, u := range staff {
			if u.Role == models.RoleBarber {
				barbers = append(barbers, u)
			}
		}
		return barbers
	case models.RoleBarber:
		return []models.User{user}
	default:
		return nil
	}
}
