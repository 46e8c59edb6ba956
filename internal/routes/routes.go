package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookmycare/clinic-scheduler/internal/audit"
	"github.com/bookmycare/clinic-scheduler/internal/cache"
	"github.com/bookmycare/clinic-scheduler/internal/config"
	"github.com/bookmycare/clinic-scheduler/internal/credentials"
	"github.com/bookmycare/clinic-scheduler/internal/handlers"
	infraRepo "github.com/bookmycare/clinic-scheduler/internal/infra/repository"
	"github.com/bookmycare/clinic-scheduler/internal/middleware"
	ucAccount "github.com/bookmycare/clinic-scheduler/internal/usecase/account"
	ucAppointment "github.com/bookmycare/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, verifier credentials.Verifier) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	clinicRepo := infraRepo.NewClinicGormRepository(db)
	accountRepo := infraRepo.NewAccountGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	statsCache := cache.NewStatsCache(cfg.RedisAddr, 30*time.Second)

	// ======================================================
	// USE CASES — ACCOUNTS
	// ======================================================
	registerUC := ucAccount.NewRegister(
		accountRepo,
		verifier,
		auditDispatcher,
		cfg.DefaultConsultationFee,
	)

	authenticateUC := ucAccount.NewAuthenticate(
		accountRepo,
		verifier,
	)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookAppointmentUC := ucAppointment.NewBookAppointment(
		clinicRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		clinicRepo,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		clinicRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg, registerUC, authenticateUC)
	meHandler := handlers.NewMeHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookAppointmentUC,
		listAppointmentsUC,
		updateStatusUC,
	)

	paymentHandler := handlers.NewPaymentHandler(db, auditDispatcher)
	adminHandler := handlers.NewAdminHandler(db, statsCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CLINIC API
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)

		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments/:userId", appointmentHandler.List)
		api.PATCH("/appointments/:id", appointmentHandler.UpdateStatus)

		api.GET("/admin/stats", adminHandler.Stats)

		api.POST("/payments", paymentHandler.Create)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			adminOnly := secured.Group("/admin")
			adminOnly.Use(middleware.RequireRole("admin"))
			{
				adminOnly.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
