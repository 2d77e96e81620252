package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"barberbook-backend/config"
	"barberbook-backend/controllers"
	"barberbook-backend/utils"
)

func SetupRouter(logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(config.RequestLogger(logger))

	origins := []string{"http://localhost:3000"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		origins = append(origins, strings.Split(extra, ",")...)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", utils.BarbershopHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Tenant bootstrap is the only write outside the scoped group
	r.POST("/api/barbershops", controllers.CreateBarbershop)

	api := r.Group("/api")
	api.Use(utils.TenantMiddleware())
	{
		// Shop profile and settings
		api.GET("/barbershop", controllers.GetBarbershop)
		api.PUT("/barbershop/capacity", controllers.UpdateCapacity)
		api.PUT("/barbershop/hours", controllers.UpdateWorkingHours)

		// Barber routes
		barbers := api.Group("/barbers")
		{
			barbers.POST("", controllers.AddBarber)
			barbers.GET("", controllers.GetBarbers)
			barbers.GET("/:id", controllers.GetBarber)
			barbers.PUT("/:id", controllers.UpdateBarber)
			barbers.DELETE("/:id", controllers.DeleteBarber)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.PUT("/:id/status", controllers.UpdateAppointmentStatus)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Holiday routes
		holidays := api.Group("/holidays")
		{
			holidays.POST("", controllers.CreateHoliday)
			holidays.GET("", controllers.GetHolidays)
			holidays.DELETE("/:id", controllers.DeleteHoliday)
		}

		// Time-off routes
		timeoff := api.Group("/timeoff")
		{
			timeoff.POST("", controllers.CreateTimeOff)
			timeoff.GET("", controllers.GetTimeOffRequests)
			timeoff.PUT("/:id/status", controllers.UpdateTimeOffStatus)
		}

		// Conflict detection
		api.GET("/conflicts", controllers.GetConflicts)
		api.GET("/conflicts/summary", controllers.GetConflictSummary)

		// Dashboard
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
