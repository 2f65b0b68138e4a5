package handlers

import (
	"context"
	"net/http"
	"time"

	"barbershop-app-server/internal/middleware"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/schedule"
	"barbershop-app-server/internal/store"
	"barbershop-app-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store       store.Appointments
	Staff       store.Staff
	Hours       schedule.Hours
	SaveTimeout time.Duration
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(appts store.Appointments, staff store.Staff, hours schedule.Hours, saveTimeout time.Duration) *AppointmentHandler {
	return &AppointmentHandler{Store: appts, Staff: staff, Hours: hours, SaveTimeout: saveTimeout}
}

// SaveAppointmentRequest represents the request body for creating or updating
// an appointment. Required-field checks run through the draft validator so
// each missing field gets its own message.
type SaveAppointmentRequest struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	BarberID   string    `json:"barberId"`
	ClientName string    `json:"clientName"`
	Notes      string    `json:"notes"`
}

// ListAppointments returns the appointments visible to the logged-in user:
// everything for an owner, only their own for a barber.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var appointments []models.Appointment
	var err error
	switch userRole {
	case models.RoleOwner:
		appointments, err = h.Store.All(c.Request.Context())
	case models.RoleBarber:
		appointments, err = h.Store.ListByBarber(c.Request.Context(), userID)
	default:
		utils.Forbidden(c, "User role not permitted to view appointments. Role: "+string(userRole))
		return
	}
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}

	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentByID returns a single appointment. Barbers can only fetch
// their own.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appt, ok, err := h.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointment: "+err.Error())
		return
	}
	if !ok {
		utils.NotFound(c, "Appointment not found")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	if userRole != models.RoleOwner && appt.BarberID != userID {
		utils.Forbidden(c, "You are not authorized to view this appointment")
		return
	}

	utils.Success(c, "Appointment fetched successfully", appt)
}

// CreateAppointment handles POST /appointments: an upsert of a new record.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	h.save(c, "")
}

// UpdateAppointment handles PUT /appointments/:id: an upsert keyed by the
// path ID.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	h.save(c, c.Param("id"))
}

func (h *AppointmentHandler) save(c *gin.Context, pathID string) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}
	userRole, _ := middleware.GetUserRoleFromContext(c)

	var req SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if pathID != "" {
		req.ID = pathID
	}

	draft := schedule.Draft{
		ID:         req.ID,
		Title:      req.Title,
		Start:      req.Start,
		End:        req.End,
		BarberID:   req.BarberID,
		ClientName: req.ClientName,
		Notes:      req.Notes,
	}

	// Barbers only book onto themselves; the barber field is forced, never
	// rejected, matching the form behavior.
	if userRole == models.RoleBarber {
		draft.BarberID = userID
	}

	if fields := schedule.ValidateDraft(draft); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, utils.ResponseData{
			Status:  http.StatusBadRequest,
			Message: "Validation failed",
			Error:   "Please fill in all required fields.",
			Data:    fields,
		})
		return
	}

	// Verify the assigned staff member exists and takes appointments
	barber, ok, err := h.Staff.GetUser(c.Request.Context(), draft.BarberID)
	if err != nil {
		utils.InternalServerError(c, "Failed to verify barber: "+err.Error())
		return
	}
	if !ok || barber.Role != models.RoleBarber {
		utils.NotFound(c, "Barber not found or user is not a barber")
		return
	}

	// An existing record a barber does not own must stay untouched
	if draft.ID != "" && userRole == models.RoleBarber {
		existing, found, err := h.Store.Get(c.Request.Context(), draft.ID)
		if err != nil {
			utils.InternalServerError(c, "Failed to fetch appointment: "+err.Error())
			return
		}
		if found && existing.BarberID != userID {
			utils.Forbidden(c, "Barbers can only modify their own appointments.")
			return
		}
	}

	isNew := draft.ID == ""

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.SaveTimeout)
	defer cancel()
	saved, err := h.Store.Upsert(ctx, draft.Appointment())
	if err != nil {
		utils.InternalServerError(c, "Failed to save appointment: "+err.Error())
		return
	}

	if isNew {
		utils.Created(c, "Appointment created successfully", saved)
		return
	}
	utils.Success(c, "Appointment saved successfully", saved)
}

// DeleteAppointment removes an appointment. Deleting an unknown ID is a
// silent no-op, not an error.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	userRole, _ := middleware.GetUserRoleFromContext(c)
	id := c.Param("id")

	appt, ok, err := h.Store.Get(c.Request.Context(), id)
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointment: "+err.Error())
		return
	}
	if ok && userRole == models.RoleBarber && appt.BarberID != userID {
		utils.Forbidden(c, "Barbers can only delete their own appointments.")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.SaveTimeout)
	defer cancel()
	if err := h.Store.Remove(ctx, id); err != nil {
		utils.InternalServerError(c, "Failed to delete appointment: "+err.Error())
		return
	}

	utils.Success(c, "Appointment deleted", nil)
}

// CalendarEvents returns the role-filtered appointments as renderable events
// for the requested view window (month, week, or day around the anchor date).
func (h *AppointmentHandler) CalendarEvents(c *gin.Context) {
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

	view := schedule.View(c.DefaultQuery("view", string(schedule.ViewMonth)))
	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		anchor, err = time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.BadRequest(c, "Invalid anchor date, expected YYYY-MM-DD")
			return
		}
	}

	all, err := h.Store.All(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch appointments: "+err.Error())
		return
	}
	staff, err := h.Staff.ListStaff(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch staff: "+err.Error())
		return
	}

	cal := schedule.NewCalendar(user, all, staff, h.Hours)
	from, to := schedule.Window(view, anchor)
	utils.Success(c, "Calendar events fetched successfully", gin.H{
		"view":   view,
		"from":   from,
		"to":     to,
		"events": cal.EventsIn(from, to),
	})
}
