package server

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"videopull/app/config"
	"videopull/app/mail"
	"videopull/app/routes/auth"
	"videopull/app/routes/dashboard"
	"videopull/app/routes/home"
	"videopull/app/routes/swaps"
)

// New builds the fiber application with all routes wired to the given
// database and mail collaborator. main() and the tests share this.
func New(cfg config.Config, db *sql.DB, mailer mail.Mailer) *fiber.App {
	engine := html.New(cfg.TemplatesDir, ".html")

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      errorHandler,
	})

	app.Use(logger.New())
	app.Static("/static", cfg.StaticDir)

	home.SetupHomeRoutes(app)
	auth.SetupAuthRoutes(app, db, cfg, mailer)
	dashboard.SetupDashboardRoutes(app, db)
	swaps.SetupSwapRoutes(app, db)

	// Catch-all for unknown paths, must be registered last.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}

// errorHandler renders the error page for anything a handler did not deal
// with itself: collaborator failures and unknown routes. The catch-all
// answers every method, so wrong-method requests surface here as 404s.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= 500 {
		log.Printf("Request failed: %s %s: %v", c.Method(), c.Path(), err)
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Page Not Found - Video Pull",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for does not exist.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Server Error - Video Pull",
			"ErrorCode":    "500",
			"ErrorTitle":   "Something Went Wrong",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	}
}
