package swaps

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupSwapRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/request", func(c *fiber.Ctx) error {
		return ShowSwapLogPage(c, db)
	})
	app.Post("/request", func(c *fiber.Ctx) error {
		return HandleSwapLog(c, db)
	})
}
