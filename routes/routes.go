package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"barberbook-backend/config"
	"barberbook-backend/controllers"
	"barberbook-backend/utils"
)

func SetupRouter(cfg *config.AppConfig, store controllers.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := &controllers.AuthController{Config: cfg}
	bookingController := &controllers.BookingController{Store: store}
	appointmentController := &controllers.AppointmentController{Store: store}
	scheduleController := &controllers.ScheduleController{Store: store}
	reportController := &controllers.ReportController{Store: store}
	exportController := &controllers.ExportController{Store: store}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Public booking flow
	api := r.Group("/api")
	{
		api.GET("/availability", bookingController.GetAvailability)
		api.GET("/services", bookingController.GetServices)
		api.POST("/appointments", bookingController.CreateAppointment)
	}

	// Admin flow
	admin := api.Group("/admin")
	admin.Use(utils.AuthMiddleware())
	{
		appointments := admin.Group("/appointments")
		{
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/today", appointmentController.GetTodayAppointments)
			appointments.PUT("/:id/status", appointmentController.UpdateStatus)
		}

		admin.GET("/schedule", scheduleController.GetSchedule)
		admin.PUT("/schedule", scheduleController.UpdateSchedule)

		admin.GET("/stats", reportController.GetStats)
		admin.GET("/export", exportController.Export)
		admin.POST("/refresh", appointmentController.Refresh)
	}

	return r
}
