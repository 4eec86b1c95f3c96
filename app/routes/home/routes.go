package home

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// guestCookie holds the visitor's name between requests on the greeting
// page, independent of login state.
const guestCookie = "guest_name"

func SetupHomeRoutes(app *fiber.App) {
	app.Get("/", ShowGreetingPage)
	app.Post("/", ShowGreetingPage)
	app.Get("/test", ShowTestPage)
}

// ShowGreetingPage accepts a name, remembers it, and greets with it.
func ShowGreetingPage(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name != "" {
		c.Cookie(&fiber.Cookie{
			Name:    guestCookie,
			Value:   name,
			Expires: time.Now().Add(24 * time.Hour),
		})
	} else {
		name = c.Cookies(guestCookie)
	}

	return c.Render("index", fiber.Map{
		"Title": "CT Transit Video Pull",
		"Name":  name,
	})
}

// ShowTestPage renders a fixed color list. Scaffolding kept from the early
// template experiments.
func ShowTestPage(c *fiber.Ctx) error {
	return c.Render("test", fiber.Map{
		"Title":  "Test - Video Pull",
		"Colors": []string{"red", "green", "blue", "yellow", "orange"},
	})
}
