package handlers

import (
	"barbershop-app-server/internal/clients"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientHandler serves the client directory behind the search-and-select
// helper. The directory lives in memory; in normal mode new clients are also
// persisted so the directory can be rebuilt on restart.
type ClientHandler struct {
	Directory *clients.Directory
	DB        *gorm.DB
}

// NewClientHandler creates a new ClientHandler. db may be nil in demo mode.
func NewClientHandler(directory *clients.Directory, db *gorm.DB) *ClientHandler {
	return &ClientHandler{Directory: directory, DB: db}
}

// SearchClients returns directory entries matching the q parameter. An empty
// query returns a bounded default list, never the whole directory.
func (h *ClientHandler) SearchClients(c *gin.Context) {
	results := h.Directory.Search(c.Query("q"))
	utils.Success(c, "Clients fetched successfully", results)
}

// SelectClient resolves one entry and returns the name and phone handed off
// to the appointment form.
func (h *ClientHandler) SelectClient(c *gin.Context) {
	selection, ok := h.Directory.Select(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Client not found")
		return
	}
	utils.Success(c, "Client selected", selection)
}

// RegisterClientRequest represents the request body for adding a client to
// the directory.
type RegisterClientRequest struct {
	Name  string `json:"name" binding:"required,min=2"`
	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`
}

// RegisterClient adds a client to the directory.
func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	client := models.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if h.DB != nil {
		if err := h.DB.Create(&client).Error; err != nil {
			utils.InternalServerError(c, "Failed to save client: "+err.Error())
			return
		}
	}
	client = h.Directory.Add(client)

	utils.Created(c, "Client registered successfully", client)
}
