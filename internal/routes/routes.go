package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/audit"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/clinic"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/config"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/domain/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/handlers"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
	infraRepo "github.com/BruksfildServices01/sorriso-perfeito/internal/infra/repository"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/metrics"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/middleware"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/scheduler"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/sorriso-perfeito/internal/usecase/appointment"
	"github.com/BruksfildServices01/sorriso-perfeito/internal/web"
)

// Deps are the process-wide singletons built in main. DB is nil in
// simulated mode.
type Deps struct {
	Config     *config.Config
	Log        *logrus.Logger
	DB         *gorm.DB
	Store      scheduler.Store
	Translator *i18n.Translator
	Clock      timezone.Clock
	Registry   *prometheus.Registry
}

// RegisterRoutes wires every handler. The returned func flushes the audit
// queue and must be called on shutdown.
func RegisterRoutes(r *gin.Engine, deps Deps) (func(), error) {
	cfg := deps.Config
	log := deps.Log
	loc := timezone.Location(cfg.ClinicTimezone)

	clock := deps.Clock
	if clock == nil {
		clock = timezone.ClinicClock{Loc: loc}
	}

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	httpMetrics := metrics.NewHTTPMetrics(registerer)

	r.Use(middleware.RequestLogger(log))
	r.Use(httpMetrics.Middleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.LocaleMiddleware(deps.Translator))

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, log)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	var sink audit.Sink = audit.LogrusSink{Logger: log}
	if deps.DB != nil {
		sink = audit.New(deps.DB)
	}
	auditDispatcher := audit.NewDispatcher(sink, log)

	schedulerMetrics := metrics.NewSchedulerMetrics(registerer)
	site := clinic.Default()

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	var (
		booker                    appointment.Booker
		completeAppointmentUC     *ucAppointment.CompleteAppointment
		cancelAppointmentUC       *ucAppointment.CancelAppointment
		listAppointmentsByDateUC  *ucAppointment.ListAppointmentsByDate
		listAppointmentsByMonthUC *ucAppointment.ListAppointmentsByMonth
	)

	if cfg.UsesDatabase() && deps.DB != nil {
		appointmentRepo := infraRepo.NewAppointmentGormRepository(deps.DB)

		booker = ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher, deps.Translator, log)
		completeAppointmentUC = ucAppointment.NewCompleteAppointment(appointmentRepo, auditDispatcher, loc)
		cancelAppointmentUC = ucAppointment.NewCancelAppointment(appointmentRepo, auditDispatcher, loc)
		listAppointmentsByDateUC = ucAppointment.NewListAppointmentsByDate(appointmentRepo, loc)
		listAppointmentsByMonthUC = ucAppointment.NewListAppointmentsByMonth(appointmentRepo, loc)
	} else {
		booker = ucAppointment.NewSimulatedBooker(cfg.SimulatedDelay, deps.Translator, log)
	}

	schedulerSvc := scheduler.NewService(deps.Store, booker, scheduler.ServiceConfig{
		Location:      loc,
		SubmitTimeout: cfg.SubmitTimeout,
		Clock:         clock,
		Translator:    deps.Translator,
		Metrics:       schedulerMetrics,
		Logger:        log,
	})

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicWebHandler := handlers.NewPublicWebHandler(site, clock)
	appWebHandler := handlers.NewAppWebHandler(schedulerSvc, site, clock, log, cfg.SessionTTL, cfg.CookieSecure)
	publicHandler := handlers.NewPublicHandler(site, clock)
	sessionHandler := handlers.NewSessionHandler(schedulerSvc, log)
	appointmentHandler := handlers.NewAppointmentHandler(
		booker,
		cfg.SubmitTimeout,
		loc,
		clock,
		log,
		completeAppointmentUC,
		cancelAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)
	authHandler := handlers.NewAuthHandler(cfg, log)
	meHandler := handlers.NewMeHandler(cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(deps.DB)

	// ======================================================
	// 🩺 OPERATIONAL
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "booking_mode": cfg.BookingMode})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", publicWebHandler.Landing)
	r.GET("/contato", publicWebHandler.Contact)

	webScheduler := r.Group("/agendar")
	{
		webScheduler.GET("", appWebHandler.Page)
		webScheduler.GET("/consulta.ics", appWebHandler.Calendar)
		webScheduler.POST("/anterior", appWebHandler.Prev)
		webScheduler.POST("/proximo", appWebHandler.Next)
		webScheduler.POST("/dia", appWebHandler.SelectDay)
		webScheduler.POST("/horario", appWebHandler.SelectTime)
		webScheduler.POST("/confirmar", limiter.Middleware(), appWebHandler.Confirm)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/clinic", publicHandler.Clinic)
		api.GET("/calendar", publicHandler.Calendar)
		api.GET("/time-slots", publicHandler.TimeSlots)

		sessions := api.Group("/sessions")
		{
			sessions.POST("", sessionHandler.Create)
			sessions.GET("/:id", sessionHandler.Get)
			sessions.POST("/:id/prev", sessionHandler.Prev)
			sessions.POST("/:id/next", sessionHandler.Next)
			sessions.PUT("/:id/date", sessionHandler.SelectDate)
			sessions.PUT("/:id/time", sessionHandler.SelectTime)
			sessions.PUT("/:id/client", sessionHandler.SetClient)
			sessions.POST("/:id/submit", limiter.Middleware(), sessionHandler.Submit)
		}

		api.POST("/appointments", limiter.Middleware(), appointmentHandler.Book)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", limiter.Middleware(), authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))
		{
			secured.GET("", meHandler.GetMe)

			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return auditDispatcher.Close, nil
}
