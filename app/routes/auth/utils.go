package auth

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"videopull/app/database"
	"videopull/app/models"
)

// SessionCookie carries the server-side session ID between requests.
const SessionCookie = "session_id"

const (
	sessionTTL  = 24 * time.Hour
	rememberTTL = 30 * 24 * time.Hour

	// resetTokenTTL bounds how long a mailed reset link stays valid.
	resetTokenTTL = 30 * time.Minute
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func NewSessionID() string {
	return uuid.NewString()
}

// ResolveSession recovers the logged-in employee from the session cookie.
// Missing, expired, or deleted sessions all read as not logged in.
func ResolveSession(c *fiber.Ctx, db *sql.DB) (*models.Employee, bool) {
	sessionID := c.Cookies(SessionCookie)
	if sessionID == "" {
		return nil, false
	}

	session, err := database.GetSessionByID(db, sessionID)
	if err != nil {
		return nil, false
	}

	employee, err := database.GetEmployeeByID(db, session.EmployeeID)
	if err != nil {
		return nil, false
	}

	roles, err := database.GetEmployeeRoles(db, employee.ID)
	if err != nil {
		log.Printf("Failed to load roles for employee %d: %v", employee.ID, err)
	} else {
		employee.Roles = roles
	}

	return employee, true
}

// RequireAuth guards a route: without a valid session the handler never runs
// and the client is redirected to the login page.
func RequireAuth(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		employee, ok := ResolveSession(c, db)
		if !ok {
			return c.Redirect("/login")
		}
		c.Locals("employee", employee)
		return c.Next()
	}
}

type resetClaims struct {
	EmployeeID  int64  `json:"employee_id"`
	Fingerprint string `json:"fpr"`
	jwt.RegisteredClaims
}

// passwordFingerprint derives a short digest of the stored hash. Reset
// tokens carry it, so completing a reset (which changes the hash)
// invalidates every outstanding token for that employee.
func passwordFingerprint(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:8])
}

// GenerateResetToken issues a signed, short-lived token naming the employee
// allowed to set a new password, bound to their current password hash.
func GenerateResetToken(secret string, employeeID int64, passwordHash string) (string, error) {
	claims := resetClaims{
		EmployeeID:  employeeID,
		Fingerprint: passwordFingerprint(passwordHash),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "videopull",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseResetToken returns the employee ID and password fingerprint from a
// valid, unexpired token. Callers must still check the fingerprint against
// the employee's current hash with ResetTokenMatches.
func ParseResetToken(secret, tokenString string) (int64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &resetClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(*resetClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid reset token")
	}
	return claims.EmployeeID, claims.Fingerprint, nil
}

// ResetTokenMatches reports whether a token fingerprint still corresponds to
// the employee's current password hash.
func ResetTokenMatches(fingerprint, passwordHash string) bool {
	return fingerprint == passwordFingerprint(passwordHash)
}
