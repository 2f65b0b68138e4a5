package routes

import (
	"time"

	"barbershop-app-server/internal/clients"
	"barbershop-app-server/internal/config"
	"barbershop-app-server/internal/handlers"
	"barbershop-app-server/internal/middleware"
	"barbershop-app-server/internal/models"
	"barbershop-app-server/internal/schedule"
	"barbershop-app-server/internal/store"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps collects everything the route table needs. DB is nil in demo mode;
// routes that require persistence (sign-up, login, staff CRUD) are only
// registered when it is present.
type Deps struct {
	Cfg          *config.Config
	DB           *gorm.DB
	Appointments store.Appointments
	Staff        store.Staff
	Directory    *clients.Directory
	DemoUserID   string
}

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, deps Deps) {
	hours := schedule.Hours{Start: deps.Cfg.Calendar.DayViewStartHour, End: deps.Cfg.Calendar.DayViewEndHour}
	saveTimeout := time.Duration(deps.Cfg.SaveTimeoutSeconds) * time.Second

	appointmentHandler := handlers.NewAppointmentHandler(deps.Appointments, deps.Staff, hours, saveTimeout)
	barberHandler := handlers.NewBarberHandler(deps.Staff, deps.DB)
	clientHandler := handlers.NewClientHandler(deps.Directory, deps.DB)
	dashboardHandler := handlers.NewDashboardHandler(deps.Appointments, deps.Staff)

	// Public routes (no authentication required)
	if deps.DB != nil {
		authHandler := handlers.NewAuthHandler(deps.DB, deps.Cfg)

		public := router.Group("/api/v1")
		{
			public.POST("/barbershops/register", authHandler.RegisterBarbershop)
			authRoutes := public.Group("/auth")
			{
				authRoutes.POST("/login", authHandler.Login)
				authRoutes.POST("/refresh-token", authHandler.RefreshToken)
			}
		}

		private := router.Group("/api/v1")
		private.Use(middleware.AuthMiddleware(deps.Cfg))
		{
			authRoutesPrivate := private.Group("/auth")
			{
				authRoutesPrivate.POST("/logout", authHandler.Logout)
				authRoutesPrivate.GET("/profile", authHandler.GetProfile)
				authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
			}
			registerCore(private, appointmentHandler, barberHandler, clientHandler, dashboardHandler)

			// Roster management is owner-only
			adminRoutes := private.Group("/barbers")
			adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleOwner))
			{
				adminRoutes.POST("", barberHandler.CreateBarber)
				adminRoutes.PUT("/:id", barberHandler.UpdateBarber)
				adminRoutes.DELETE("/:id", barberHandler.DeleteBarber)
			}
		}
	} else {
		// Demo mode: identity comes from the X-Demo-User header
		demo := router.Group("/api/v1")
		demo.Use(middleware.DemoAuthMiddleware(deps.Staff, deps.DemoUserID))
		{
			registerCore(demo, appointmentHandler, barberHandler, clientHandler, dashboardHandler)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}

// registerCore wires the routes shared by demo and normal mode.
func registerCore(
	g *gin.RouterGroup,
	appointmentHandler *handlers.AppointmentHandler,
	barberHandler *handlers.BarberHandler,
	clientHandler *handlers.ClientHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	appointmentRoutes := g.Group("/appointments")
	{
		appointmentRoutes.GET("", appointmentHandler.ListAppointments)
		appointmentRoutes.GET("/calendar", appointmentHandler.CalendarEvents)
		appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
		appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
		appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
		appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
	}

	g.GET("/barbers", barberHandler.ListBarbers)

	clientRoutes := g.Group("/clients")
	{
		clientRoutes.GET("", clientHandler.SearchClients)
		clientRoutes.GET("/:id/select", clientHandler.SelectClient)
		clientRoutes.POST("", clientHandler.RegisterClient)
	}

	g.GET("/dashboard/stats", dashboardHandler.GetStats)
}
