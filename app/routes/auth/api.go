package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"videopull/app/config"
	"videopull/app/database"
	"videopull/app/forms"
	"videopull/app/mail"
)

func ShowLoginPage(c *fiber.Ctx, db *sql.DB) error {
	if _, ok := ResolveSession(c, db); ok {
		return c.Redirect("/dashboard")
	}
	return c.Render("login", fiber.Map{
		"Title": "Login - Video Pull",
	}, "")
}

func HandleLogin(c *fiber.Ctx, db *sql.DB) error {
	form := forms.Login()
	values := form.PostedValues(c)

	cleaned, errs := form.Validate(values)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Title":  "Login - Video Pull",
			"Errors": errs,
			"Values": values,
		}, "")
	}

	employee, err := database.GetEmployeeByUsername(db, cleaned["username"])
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("look up employee: %w", err)
	}
	if err != nil || !CheckPasswordHash(cleaned["password"], employee.Password) {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Title":  "Login - Video Pull",
			"Error":  "Invalid username or password.",
			"Values": values,
		}, "")
	}

	ttl := sessionTTL
	if cleaned["remember"] == "true" {
		ttl = rememberTTL
	}

	sessionID := NewSessionID()
	expiresAt := time.Now().Add(ttl)
	if err := database.CreateSession(db, sessionID, employee.ID, expiresAt); err != nil {
		return fmt.Errorf("create session: %w", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/dashboard")
}

func ShowSignupPage(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{
		"Title": "Sign Up - Video Pull",
	}, "")
}

func HandleSignup(c *fiber.Ctx, db *sql.DB) error {
	form := forms.Signup()
	values := form.PostedValues(c)

	cleaned, errs := form.Validate(values)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
			"Title":  "Sign Up - Video Pull",
			"Errors": errs,
			"Values": values,
		}, "")
	}

	hashed, err := HashPassword(cleaned["password"])
	if err != nil {
		// bcrypt caps input at 72 bytes, below the form's 80-character bound.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
				"Title":  "Sign Up - Video Pull",
				"Errors": forms.Errors{"password": "Password cannot be longer than 72 bytes."},
				"Values": values,
			}, "")
		}
		return fmt.Errorf("hash password: %w", err)
	}

	employee, err := database.CreateEmployee(db, cleaned["username"], cleaned["email"], hashed)
	if err != nil {
		if database.IsUniqueViolation(err) {
			errs = forms.Errors{}
			if strings.Contains(err.Error(), "email") {
				errs["email"] = "That email is already registered."
			} else {
				errs["username"] = "That username is already taken."
			}
			return c.Status(fiber.StatusBadRequest).Render("signup", fiber.Map{
				"Title":  "Sign Up - Video Pull",
				"Errors": errs,
				"Values": values,
			}, "")
		}
		return fmt.Errorf("create employee: %w", err)
	}

	return c.Render("login", fiber.Map{
		"Title":  "Login - Video Pull",
		"Notice": fmt.Sprintf("Account created for %s. Please log in.", employee.Username),
	}, "")
}

func HandleLogout(c *fiber.Ctx, db *sql.DB) error {
	if sessionID := c.Cookies(SessionCookie); sessionID != "" {
		if err := database.DeleteSession(db, sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.Redirect("/")
}

func ShowResetRequestPage(c *fiber.Ctx, db *sql.DB) error {
	if _, ok := ResolveSession(c, db); ok {
		return c.Redirect("/dashboard")
	}
	return c.Render("reset_request", fiber.Map{
		"Title": "Reset Password - Video Pull",
	}, "")
}

// HandleResetRequest mails a reset link to a known address. An unknown
// address renders an inline error and never reaches the mailer.
func HandleResetRequest(c *fiber.Ctx, db *sql.DB, cfg config.Config, mailer mail.Mailer) error {
	if _, ok := ResolveSession(c, db); ok {
		return c.Redirect("/dashboard")
	}

	form := forms.ResetRequest()
	values := form.PostedValues(c)

	cleaned, errs := form.Validate(values)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).Render("reset_request", fiber.Map{
			"Title":  "Reset Password - Video Pull",
			"Errors": errs,
			"Values": values,
		}, "")
	}

	employee, err := database.GetEmployeeByEmail(db, cleaned["email"])
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.Status(fiber.StatusBadRequest).Render("reset_request", fiber.Map{
				"Title":  "Reset Password - Video Pull",
				"Errors": forms.Errors{"email": "There is no account with that email."},
				"Values": values,
			}, "")
		}
		return fmt.Errorf("look up employee by email: %w", err)
	}

	token, err := GenerateResetToken(cfg.SecretKey, employee.ID, employee.Password)
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	link := c.BaseURL() + "/reset_password/" + token
	body := fmt.Sprintf(
		"To reset your password, visit the following link:\n\n%s\n\nIf you did not make this request, ignore this email.",
		link,
	)

	if err := mailer.Send([]string{employee.Email}, "Password Reset Request", body); err != nil {
		log.Printf("Reset mail to %s failed: %v", employee.Email, err)
		return fmt.Errorf("send reset mail: %w", err)
	}

	return c.Render("reset_request", fiber.Map{
		"Title":  "Reset Password - Video Pull",
		"Notice": "An email has been sent with instructions to reset your password.",
	}, "")
}

func renderInvalidResetLink(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).Render("reset_request", fiber.Map{
		"Title": "Reset Password - Video Pull",
		"Error": "That reset link is invalid or has expired.",
	}, "")
}

var errInvalidResetToken = errors.New("invalid reset link")

// resolveResetToken verifies the token and that it was issued against the
// employee's current password hash. A completed reset changes the hash, so
// a used link stops resolving. Database failures other than a missing
// employee propagate as server faults.
func resolveResetToken(db *sql.DB, cfg config.Config, tokenString string) (int64, error) {
	employeeID, fingerprint, err := ParseResetToken(cfg.SecretKey, tokenString)
	if err != nil {
		return 0, errInvalidResetToken
	}

	employee, err := database.GetEmployeeByID(db, employeeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, errInvalidResetToken
		}
		return 0, fmt.Errorf("look up employee: %w", err)
	}
	if !ResetTokenMatches(fingerprint, employee.Password) {
		return 0, errInvalidResetToken
	}
	return employeeID, nil
}

func ShowResetPasswordPage(c *fiber.Ctx, db *sql.DB, cfg config.Config) error {
	if _, err := resolveResetToken(db, cfg, c.Params("token")); err != nil {
		if errors.Is(err, errInvalidResetToken) {
			return renderInvalidResetLink(c)
		}
		return err
	}

	return c.Render("reset_password", fiber.Map{
		"Title": "Choose a New Password - Video Pull",
		"Token": c.Params("token"),
	}, "")
}

func HandleResetPassword(c *fiber.Ctx, db *sql.DB, cfg config.Config) error {
	employeeID, err := resolveResetToken(db, cfg, c.Params("token"))
	if err != nil {
		if errors.Is(err, errInvalidResetToken) {
			return renderInvalidResetLink(c)
		}
		return err
	}

	form := forms.ResetPassword()
	values := form.PostedValues(c)

	cleaned, errs := form.Validate(values)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).Render("reset_password", fiber.Map{
			"Title":  "Choose a New Password - Video Pull",
			"Token":  c.Params("token"),
			"Errors": errs,
		}, "")
	}

	hashed, err := HashPassword(cleaned["password"])
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return c.Status(fiber.StatusBadRequest).Render("reset_password", fiber.Map{
				"Title":  "Choose a New Password - Video Pull",
				"Token":  c.Params("token"),
				"Errors": forms.Errors{"password": "Password cannot be longer than 72 bytes."},
			}, "")
		}
		return fmt.Errorf("hash password: %w", err)
	}

	if err := database.UpdateEmployeePassword(db, employeeID, hashed); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	return c.Render("login", fiber.Map{
		"Title":  "Login - Video Pull",
		"Notice": "Your password has been updated. Please log in.",
	}, "")
}
