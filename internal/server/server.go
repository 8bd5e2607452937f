// Package server contains the HTTP handlers and route wiring for the
// application's JSON API.
package server

import (
	"context"
	"fmt"
	"time"

	"carelink/internal/config"
	"carelink/internal/database"
	"carelink/internal/middleware"
	"carelink/internal/models"
	"carelink/internal/repository"
	"carelink/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	app    *fiber.App
	prom   *fiberprometheus.FiberPrometheus

	userRepo        repository.UserRepository
	caregiverRepo   repository.CaregiverRepository
	memberRepo      repository.MemberRepository
	addressRepo     repository.AddressRepository
	jobRepo         repository.JobRepository
	applicationRepo repository.JobApplicationRepository
	appointmentRepo repository.AppointmentRepository

	userService        *service.UserService
	caregiverService   *service.CaregiverService
	memberService      *service.MemberService
	addressService     *service.AddressService
	jobService         *service.JobService
	applicationService *service.JobApplicationService
	appointmentService *service.AppointmentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the connection.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	server := &Server{
		config:          cfg,
		db:              db,
		prom:            fiberprometheus.New("carelink"),
		userRepo:        repository.NewUserRepository(db),
		caregiverRepo:   repository.NewCaregiverRepository(db),
		memberRepo:      repository.NewMemberRepository(db),
		addressRepo:     repository.NewAddressRepository(db),
		jobRepo:         repository.NewJobRepository(db),
		applicationRepo: repository.NewJobApplicationRepository(db),
		appointmentRepo: repository.NewAppointmentRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.caregiverService = service.NewCaregiverService(server.caregiverRepo)
	server.memberService = service.NewMemberService(server.memberRepo)
	server.addressService = service.NewAddressService(server.addressRepo)
	server.jobService = service.NewJobService(server.jobRepo)
	server.applicationService = service.NewJobApplicationService(server.applicationRepo)
	server.appointmentService = service.NewAppointmentService(server.appointmentRepo)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into slog
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Request metrics; the scrape endpoint is registered with the routes
	if s.prom != nil {
		app.Use(s.prom.Middleware)
	}

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", s.Index)
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.prom != nil {
		s.prom.RegisterAt(app, "/metrics")
	}

	users := app.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/new", s.NewUserForm)
	users.Post("/", s.CreateUser)
	users.Get("/:id", s.GetUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)

	caregivers := app.Group("/caregivers")
	caregivers.Get("/", s.ListCaregivers)
	caregivers.Get("/new", s.NewCaregiverForm)
	caregivers.Post("/", s.CreateCaregiver)
	caregivers.Get("/:id", s.GetCaregiver)
	caregivers.Put("/:id", s.UpdateCaregiver)
	caregivers.Delete("/:id", s.DeleteCaregiver)

	members := app.Group("/members")
	members.Get("/", s.ListMembers)
	members.Get("/new", s.NewMemberForm)
	members.Post("/", s.CreateMember)
	members.Get("/:id", s.GetMember)
	members.Put("/:id", s.UpdateMember)
	members.Delete("/:id", s.DeleteMember)

	addresses := app.Group("/addresses")
	addresses.Get("/", s.ListAddresses)
	addresses.Get("/new", s.NewAddressForm)
	addresses.Post("/", s.CreateAddress)
	addresses.Get("/:id", s.GetAddress)
	addresses.Put("/:id", s.UpdateAddress)
	addresses.Delete("/:id", s.DeleteAddress)

	jobs := app.Group("/jobs")
	jobs.Get("/", s.ListJobs)
	jobs.Get("/new", s.NewJobForm)
	jobs.Post("/", s.CreateJob)
	jobs.Get("/:id", s.GetJob)
	jobs.Put("/:id", s.UpdateJob)
	jobs.Delete("/:id", s.DeleteJob)

	applications := app.Group("/job-applications")
	applications.Get("/", s.ListJobApplications)
	applications.Get("/new", s.NewJobApplicationForm)
	applications.Post("/", s.CreateJobApplication)
	applications.Get("/:caregiverId/:jobId", s.GetJobApplication)
	applications.Put("/:caregiverId/:jobId", s.UpdateJobApplication)
	applications.Delete("/:caregiverId/:jobId", s.DeleteJobApplication)

	appointments := app.Group("/appointments")
	appointments.Get("/", s.ListAppointments)
	appointments.Get("/new", s.NewAppointmentForm)
	appointments.Post("/", s.CreateAppointment)
	appointments.Get("/:id", s.GetAppointment)
	appointments.Put("/:id", s.UpdateAppointment)
	appointments.Delete("/:id", s.DeleteAppointment)
}

// Index handles GET / with a map of the API surface.
func (s *Server) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name": "Caregiver Platform API",
		"resources": []string{
			"/users",
			"/caregivers",
			"/members",
			"/addresses",
			"/jobs",
			"/job-applications",
			"/appointments",
		},
	})
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Caregiver Platform API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error",
				"path", c.Path(), "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("server starting", "port", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			return err
		}
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
