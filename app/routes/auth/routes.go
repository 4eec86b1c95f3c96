package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"videopull/app/config"
	"videopull/app/mail"
)

func SetupAuthRoutes(app *fiber.App, db *sql.DB, cfg config.Config, mailer mail.Mailer) {
	app.Get("/login", func(c *fiber.Ctx) error {
		return ShowLoginPage(c, db)
	})
	app.Post("/login", func(c *fiber.Ctx) error {
		return HandleLogin(c, db)
	})

	app.Get("/signup", ShowSignupPage)
	app.Post("/signup", func(c *fiber.Ctx) error {
		return HandleSignup(c, db)
	})

	app.Get("/logout", RequireAuth(db), func(c *fiber.Ctx) error {
		return HandleLogout(c, db)
	})

	app.Get("/reset_password", func(c *fiber.Ctx) error {
		return ShowResetRequestPage(c, db)
	})
	app.Post("/reset_password", func(c *fiber.Ctx) error {
		return HandleResetRequest(c, db, cfg, mailer)
	})
	app.Get("/reset_password/:token", func(c *fiber.Ctx) error {
		return ShowResetPasswordPage(c, db, cfg)
	})
	app.Post("/reset_password/:token", func(c *fiber.Ctx) error {
		return HandleResetPassword(c, db, cfg)
	})
}
