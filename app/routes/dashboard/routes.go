package dashboard

import (
	"database/sql"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"videopull/app/database"
	"videopull/app/models"
	"videopull/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/dashboard", auth.RequireAuth(db), func(c *fiber.Ctx) error {
		return ShowDashboardPage(c, db)
	})
}

// ShowDashboardPage is the authenticated landing page: the current user's
// name plus the most recent swap events.
func ShowDashboardPage(c *fiber.Ctx, db *sql.DB) error {
	employee := c.Locals("employee").(*models.Employee)

	events, err := database.ListSwapEvents(db, 10)
	if err != nil {
		return fmt.Errorf("list swap events: %w", err)
	}

	return c.Render("dashboard", fiber.Map{
		"Title":       "Dashboard - Video Pull",
		"CurrentPage": "dashboard",
		"Employee":    employee,
		"Events":      events,
	})
}
