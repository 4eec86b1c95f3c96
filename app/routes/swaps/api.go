package swaps

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"videopull/app/database"
	"videopull/app/forms"
	"videopull/app/models"
)

// buildSwapForm assembles the drive-swap form with choice lists read from
// the database at render time, so the options always match current rows.
func buildSwapForm(db *sql.DB) (*forms.Form, error) {
	buses, err := database.ListBuses(db)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	employees, err := database.ListEmployees(db)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	reasons, err := database.ListReasons(db)
	if err != nil {
		return nil, fmt.Errorf("list reasons: %w", err)
	}
	drives, err := database.ListHardDrives(db)
	if err != nil {
		return nil, fmt.Errorf("list hard drives: %w", err)
	}

	busOpts := make([]forms.Option, len(buses))
	for i, b := range buses {
		busOpts[i] = forms.Option{Value: strconv.FormatInt(b.ID, 10), Label: b.BusNumber}
	}
	supervisorOpts := make([]forms.Option, len(employees))
	for i, e := range employees {
		supervisorOpts[i] = forms.Option{Value: strconv.FormatInt(e.ID, 10), Label: e.Username}
	}
	reasonOpts := make([]forms.Option, len(reasons))
	for i, r := range reasons {
		reasonOpts[i] = forms.Option{Value: strconv.FormatInt(r.ID, 10), Label: r.Name}
	}
	driveOpts := make([]forms.Option, len(drives))
	for i, d := range drives {
		driveOpts[i] = forms.Option{
			Value: strconv.FormatInt(d.ID, 10),
			Label: fmt.Sprintf("%s (%s)", d.SerialNumber, d.ConditionName),
		}
	}

	return forms.SwapLog(busOpts, supervisorOpts, reasonOpts, driveOpts), nil
}

func ShowSwapLogPage(c *fiber.Ctx, db *sql.DB) error {
	form, err := buildSwapForm(db)
	if err != nil {
		return err
	}

	return c.Render("videolog", fiber.Map{
		"Title":       "Log a Drive Swap - Video Pull",
		"CurrentPage": "request",
		"Form":        form,
	})
}

// HandleSwapLog validates the submission against the current choice lists
// and appends the swap event.
func HandleSwapLog(c *fiber.Ctx, db *sql.DB) error {
	form, err := buildSwapForm(db)
	if err != nil {
		return err
	}

	values := form.PostedValues(c)
	cleaned, errs := form.Validate(values)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).Render("videolog", fiber.Map{
			"Title":       "Log a Drive Swap - Video Pull",
			"CurrentPage": "request",
			"Form":        form,
			"Errors":      errs,
			"Values":      values,
		})
	}

	event := &models.SwapEvent{
		BusID:      mustID(cleaned["bus"]),
		DriveOutID: mustID(cleaned["drive_out"]),
		DriveInID:  mustID(cleaned["drive_in"]),
		EmployeeID: mustID(cleaned["supervisor"]),
		ReasonID:   mustID(cleaned["reason"]),
		SwapDate:   cleaned["date"],
		SwapTime:   cleaned["time"],
		Notes:      cleaned["notes"],
	}

	if err := database.CreateSwapEvent(db, event); err != nil {
		if database.IsCheckViolation(err) {
			return c.Status(fiber.StatusBadRequest).Render("videolog", fiber.Map{
				"Title":       "Log a Drive Swap - Video Pull",
				"CurrentPage": "request",
				"Form":        form,
				"Errors":      forms.Errors{"drive_in": "Field must differ from the removed drive."},
				"Values":      values,
			})
		}
		return fmt.Errorf("create swap event: %w", err)
	}

	return c.Redirect("/dashboard")
}

// mustID converts a validated choice value; choices are rendered from
// int64 IDs so the parse cannot fail after membership validation.
func mustID(value string) int64 {
	id, _ := strconv.ParseInt(value, 10, 64)
	return id
}
