package handlers

import (
	"barbershop-app-server/internal/middleware"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/schedule"
	"barbershop-app-server/internal/store"
	"barbershop-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BarberHandler handles staff-related requests. Listing goes through the
// store interface so it works in demo mode; the owner-only CRUD needs the
// database and is only routed in normal mode.
type BarberHandler struct {
	Staff store.Staff
	DB    *gorm.DB
}

// NewBarberHandler creates a new BarberHandler. db may be nil in demo mode.
func NewBarberHandler(staff store.Staff, db *gorm.DB) *BarberHandler {
	return &BarberHandler{Staff: staff, DB: db}
}

// ListBarbers returns the staff members visible to the logged-in user: every
// barber for an owner, only themselves for a barber.
func (h *BarberHandler) ListBarbers(c *gin.Context) {
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

	staff, err := h.Staff.ListStaff(c.Request.Context())
	if err != nil {
		utils.InternalServerError(c, "Failed to fetch staff: "+err.Error())
		return
	}

	visible := schedule.VisibleBarbers(staff, user)
	sanitized := make([]models.UserSanitized, len(visible))
	for i, u := range visible {
		sanitized[i] = u.Sanitize()
	}

	utils.Success(c, "Barbers fetched successfully", sanitized)
}

// CreateBarberRequest represents the request body for the owner adding a
// barber to the roster.
type CreateBarberRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Name        string `json:"name" binding:"required,min=2"`
	Color       string `json:"color"`
	PhoneNumber string `json:"phoneNumber"`
}

// CreateBarber handles adding a barber (owner only).
func (h *BarberHandler) CreateBarber(c *gin.Context) {
	var req CreateBarberRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var existingUser models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		utils.BadRequest(c, "User with this email already exists")
		return
	} else if err != gorm.ErrRecordNotFound {
		utils.InternalServerError(c, "Database error: "+err.Error())
		return
	}

	ownerID, _ := middleware.GetUserIDFromContext(c)
	var owner models.User
	if err := h.DB.First(&owner, "id = ?", ownerID).Error; err != nil {
		utils.InternalServerError(c, "Failed to resolve owner: "+err.Error())
		return
	}

	barber := models.User{
		BarbershopID: owner.BarbershopID,
		Email:        req.Email,
		Name:         req.Name,
		Role:         models.RoleBarber,
		Color:        req.Color,
		PhoneNumber:  req.PhoneNumber,
	}
	if err := barber.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password: "+err.Error())
		return
	}

	if err := h.DB.Create(&barber).Error; err != nil {
		utils.InternalServerError(c, "Failed to create barber: "+err.Error())
		return
	}

	utils.Created(c, "Barber created successfully", barber.Sanitize())
}

// UpdateBarberRequest represents the request body for updating a barber.
type UpdateBarberRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateBarber handles updating a barber's details (owner only). Role is
// immutable; an owner cannot be demoted nor a barber promoted here.
func (h *BarberHandler) UpdateBarber(c *gin.Context) {
	barberID := c.Param("id")

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var barber models.User
	if err := h.DB.First(&barber, "id = ? AND role = ?", barberID, models.RoleBarber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Barber not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if req.Name != "" {
		barber.Name = req.Name
	}
	if req.Color != "" {
		barber.Color = req.Color
	}
	if req.PhoneNumber != "" {
		barber.PhoneNumber = req.PhoneNumber
	}

	if err := h.DB.Save(&barber).Error; err != nil {
		utils.InternalServerError(c, "Failed to update barber: "+err.Error())
		return
	}

	utils.Success(c, "Barber updated successfully", barber.Sanitize())
}

// DeleteBarber handles removing a barber from the roster (owner only).
func (h *BarberHandler) DeleteBarber(c *gin.Context) {
	barberID := c.Param("id")

	var barber models.User
	if err := h.DB.First(&barber, "id = ? AND role = ?", barberID, models.RoleBarber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Barber not found")
		} else {
			utils.InternalServerError(c, "Database error: "+err.Error())
		}
		return
	}

	if err := h.DB.Delete(&models.User{}, "id = ?", barberID).Error; err != nil {
		utils.InternalServerError(c, "Failed to delete barber: "+err.Error())
		return
	}

	utils.Success(c, "Barber deleted successfully", nil)
}
