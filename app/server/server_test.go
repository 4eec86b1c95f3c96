package server

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videopull/app/config"
	"videopull/app/database"
)

type sentMail struct {
	To      []string
	Subject string
	Body    string
}

// captureMailer records deliveries instead of sending them.
type captureMailer struct {
	Sent []sentMail
}

func (m *captureMailer) Send(to []string, subject, body string) error {
	m.Sent = append(m.Sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *sql.DB, *captureMailer) {
	t.Helper()

	db, err := sql.Open(database.DriverSQLite, ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db, database.DriverSQLite))
	require.NoError(t, database.SeedDefaults(db))

	cfg := config.Config{
		SecretKey:    "test-secret",
		TemplatesDir: "../templates",
		StaticDir:    "../../static",
	}
	mailer := &captureMailer{}
	return New(cfg, db, mailer), db, mailer
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "session_id" && c.Value != "" {
			return c
		}
	}
	return nil
}

func signup(t *testing.T, app *fiber.App, username, email, password string) {
	t.Helper()
	resp := postForm(t, app, "/signup", url.Values{
		"email":    {email},
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "Account created")
}

func login(t *testing.T, app *fiber.App, username, password string) *http.Cookie {
	t.Helper()
	resp := postForm(t, app, "/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/dashboard", resp.Header.Get("Location"))
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "login must set a session cookie")
	return cookie
}

func TestSignupLoginDashboard(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")
	cookie := login(t, app, "alice", "password123")

	resp := get(t, app, "/dashboard", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "alice")
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/signup", url.Values{
		"email":    {"other@example.com"},
		"username": {"alice"},
		"password": {"password123"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "already taken")
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/signup", url.Values{
		"email":    {"alice@example.com"},
		"username": {"alice2"},
		"password": {"password123"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "already registered")
}

func TestSignupRejectsOverlongPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	// 80 characters passes form validation but exceeds bcrypt's 72-byte cap.
	resp := postForm(t, app, "/signup", url.Values{
		"email":    {"alice@example.com"},
		"username": {"alice"},
		"password": {strings.Repeat("a", 80)},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "72 bytes")
}

func TestResetPasswordRejectsOverlongPassword(t *testing.T) {
	app, _, mailer := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/reset_password", url.Values{
		"email": {"alice@example.com"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, mailer.Sent, 1)

	linkRe := regexp.MustCompile(`/reset_password/(\S+)`)
	match := linkRe.FindStringSubmatch(mailer.Sent[0].Body)
	require.NotNil(t, match)
	token := match[1]

	resp = postForm(t, app, "/reset_password/"+token, url.Values{
		"password":         {strings.Repeat("a", 80)},
		"confirm_password": {strings.Repeat("a", 80)},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "72 bytes")

	// The failed attempt must not burn the token.
	resp = postForm(t, app, "/reset_password/"+token, url.Values{
		"password":         {"newpassword1"},
		"confirm_password": {"newpassword1"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login(t, app, "alice", "newpassword1")
}

func TestLoginWrongPassword(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrongpass"},
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp), "failed login must not set a session cookie")
	assert.Contains(t, body(t, resp), "Invalid username or password")
}

func TestGuardedRoutesRedirectToLogin(t *testing.T) {
	app, _, _ := newTestApp(t)

	for _, path := range []string{"/dashboard", "/logout"} {
		resp := get(t, app, path)
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app, _, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")
	cookie := login(t, app, "alice", "password123")

	resp := get(t, app, "/logout", cookie)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// The old cookie is dead on the server side, not just cleared client-side.
	resp = get(t, app, "/dashboard", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestResetRequestUnknownEmail(t *testing.T) {
	app, _, mailer := newTestApp(t)

	resp := postForm(t, app, "/reset_password", url.Values{
		"email": {"nobody@example.com"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "no account with that email")
	assert.Empty(t, mailer.Sent, "mailer must not be invoked for unknown addresses")
}

func TestResetPasswordFullFlow(t *testing.T) {
	app, _, mailer := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")

	resp := postForm(t, app, "/reset_password", url.Values{
		"email": {"alice@example.com"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, mailer.Sent, 1)
	assert.Equal(t, []string{"alice@example.com"}, mailer.Sent[0].To)

	linkRe := regexp.MustCompile(`/reset_password/(\S+)`)
	match := linkRe.FindStringSubmatch(mailer.Sent[0].Body)
	require.NotNil(t, match, "reset mail must contain the reset link")
	token := match[1]

	resp = get(t, app, "/reset_password/"+token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, app, "/reset_password/"+token, url.Values{
		"password":         {"newpassword1"},
		"confirm_password": {"newpassword1"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	login(t, app, "alice", "newpassword1")

	// The link died with the old password. Replaying it must not work.
	resp = get(t, app, "/reset_password/"+token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postForm(t, app, "/reset_password/"+token, url.Values{
		"password":         {"anotherpass1"},
		"confirm_password": {"anotherpass1"},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "invalid or has expired")
}

func TestResetPasswordBadToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := get(t, app, "/reset_password/garbage")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body(t, resp), "invalid or has expired")
}

func TestSwapLogSubmission(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")
	bus, err := database.CreateBus(db, "1201")
	require.NoError(t, err)
	good, err := database.GetConditionByName(db, "good")
	require.NoError(t, err)
	out, err := database.CreateHardDrive(db, "CT-HD-0001", good.ID)
	require.NoError(t, err)
	in, err := database.CreateHardDrive(db, "CT-HD-0002", good.ID)
	require.NoError(t, err)
	emp, err := database.GetEmployeeByUsername(db, "alice")
	require.NoError(t, err)
	reasons, err := database.ListReasons(db)
	require.NoError(t, err)

	resp := get(t, app, "/request")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	assert.Contains(t, page, "1201")
	assert.Contains(t, page, "CT-HD-0002")

	form := url.Values{
		"bus":        {itoa(bus.ID)},
		"supervisor": {itoa(emp.ID)},
		"reason":     {itoa(reasons[0].ID)},
		"drive_out":  {itoa(out.ID)},
		"drive_in":   {itoa(in.ID)},
		"date":       {"2024-06-15"},
		"time":       {"14:30"},
		"notes":      {"weekly pull"},
	}
	resp = postForm(t, app, "/request", form)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	events, err := database.ListSwapEvents(db, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "weekly pull", events[0].Notes)

	// Same drive both ways never persists.
	form.Set("drive_in", itoa(out.ID))
	resp = postForm(t, app, "/request", form)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	events, err = database.ListSwapEvents(db, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestGreetingPage(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := get(t, app, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Hello CT Transit")

	resp = postForm(t, app, "/", url.Values{"name": {"World"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Hello, World!")
}

func TestTestPageListsColors(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := get(t, app, "/test")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "green")
}

func TestUnknownRouteRenders404(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := get(t, app, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Page Not Found")
}

func TestWrongMethodRenders404(t *testing.T) {
	app, _, _ := newTestApp(t)

	// The catch-all answers every method, so a POST to a GET-only page
	// falls through to it rather than a 405.
	resp := postForm(t, app, "/test", url.Values{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Page Not Found")
}

func TestDashboardPropagatesQueryFailure(t *testing.T) {
	app, db, _ := newTestApp(t)

	signup(t, app, "alice", "alice@example.com", "password123")
	cookie := login(t, app, "alice", "password123")

	_, err := db.Exec("DROP TABLE bus_hd_swap_events")
	require.NoError(t, err)

	resp := get(t, app, "/dashboard", cookie)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Something Went Wrong")
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
