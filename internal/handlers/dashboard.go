package handlers

import (
	"time"

	"barbershop-app-server/internal/middleware"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/schedule"
	"barbershop-app-server/internal/store"
	"barbershop-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// recentLimit caps the "recent appointments" list on the dashboard.
const recentLimit = 5

// DashboardHandler computes the stat cards for the admin dashboard from the
// role-filtered appointment set.
type DashboardHandler struct {
	Store store.Appointments
	Staff store.Staff
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(appts store.Appointments, staff store.Staff) *DashboardHandler {
	return &DashboardHandler{Store: appts, Staff: staff}
}

// DashboardStats is the response body for the dashboard stat cards.
type DashboardStats struct {
	TotalAppointments int                  `json:"totalAppointments"`
	UpcomingToday     int                  `json:"upcomingToday"`
	PerBarber         map[string]int       `json:"perBarber"`
	Recent            []models.Appointment `json:"recent"`
}

// GetStats returns appointment totals, today's load, per-barber counts, and
// the most recently added appointments visible to the user.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, ok, err := h.Staff.GetUser(c.Request.Context(), userID)
	if err != nil {
		utils.InternalServerError(c, "Failed to resolve user: "+err.Error())
		return
	}
	if !ok {
		utils.Unauthorized(c, "Unknown user")
		return
	}

	all, err := h.Store.All(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	visible := schedule.VisibleAppointments(all, user)

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := DashboardStats{
		TotalAppointments: len(visible),
		PerBarber:         make(map[string]int),
	}
	for _, a := range visible {
		stats.PerBarber[a.BarberID]++
		if a.Start.Before(dayEnd) && a.End.After(dayStart) && a.End.After(now) {
			stats.UpcomingToday++
		}
	}

	// Most recently added first
	for i := len(visible) - 1; i >= 0 && len(stats.Recent) < recentLimit; i-- {
		stats.Recent = append(stats.Recent, visible[i])
	}

	utils.Success(c, "Dashboard stats fetched successfully", stats)
}
