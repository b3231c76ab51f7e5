package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"visorhr.com/internal/api/middleware"
	"visorhr.com/internal/auth"
	"visorhr.com/internal/config"
	"visorhr.com/internal/infra"
	"visorhr.com/internal/service"
	"visorhr.com/internal/session"
)

// Router registers all business routes.
type Router struct {
	app      *fiber.App
	cfg      *config.Config
	db       *gorm.DB
	sessions session.Store
	media    *infra.MediaStore
}

func NewRouter(app *fiber.App, cfg *config.Config, db *gorm.DB, sessions session.Store, media *infra.MediaStore) *Router {
	return &Router{
		app:      app,
		cfg:      cfg,
		db:       db,
		sessions: sessions,
		media:    media,
	}
}

func (r *Router) RegisterRoutes() error {
	enforcer, err := auth.InitCasbin(r.db)
	if err != nil {
		return fmt.Errorf("initialize casbin: %w", err)
	}

	accountSvc := service.NewAccountService(r.db, enforcer)
	employeeSvc := service.NewEmployeeService(r.db, r.media)

	authHandler := NewAuthHandler(accountSvc, r.sessions, r.cfg)
	employeeHandler := NewEmployeeHandler(employeeSvc)

	sessionAuth := middleware.SessionAuth(r.db, r.sessions, enforcer, r.cfg.Session.CookieName)

	// Public account routes. Logout stays public on purpose: it succeeds
	// even without an active session.
	accounts := r.app.Group("/accounts")
	accounts.Post("/register", authHandler.Register)
	accounts.Post("/login", authHandler.Login)
	accounts.Post("/logout", authHandler.Logout)
	accounts.Post("/check-user-exists", authHandler.CheckUserExists)
	accounts.Post("/validate-admin", sessionAuth, authHandler.ValidateAdmin)

	employee := r.app.Group("/employee", sessionAuth)
	employee.Post("/save", employeeHandler.Save)

	return nil
}
