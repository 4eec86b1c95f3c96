package forms

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"time"
	"unicode/utf8"
)

// Validator checks one submitted value. The full value set is passed so
// cross-field rules (equality) can see their counterpart. Apart from
// Required, validators accept the empty string so optional fields stay
// optional.
type Validator func(value string, all url.Values) error

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Required() Validator {
	return func(value string, _ url.Values) error {
		if value == "" {
			return errors.New("This field is required.")
		}
		return nil
	}
}

func Length(min, max int) Validator {
	return func(value string, _ url.Values) error {
		if value == "" {
			return nil
		}
		// Character count, not bytes, so multibyte input measures like it reads.
		if n := utf8.RuneCountInString(value); n < min || n > max {
			return fmt.Errorf("Field must be between %d and %d characters long.", min, max)
		}
		return nil
	}
}

func MaxLength(max int) Validator {
	return func(value string, _ url.Values) error {
		if utf8.RuneCountInString(value) > max {
			return fmt.Errorf("Field cannot be longer than %d characters.", max)
		}
		return nil
	}
}

func Email() Validator {
	return func(value string, _ url.Values) error {
		if value == "" {
			return nil
		}
		if !emailPattern.MatchString(value) {
			return errors.New("Invalid email address.")
		}
		return nil
	}
}

// EqualTo fails unless the value matches the other named field.
func EqualTo(other, label string) Validator {
	return func(value string, all url.Values) error {
		if value != all.Get(other) {
			return fmt.Errorf("Field must be equal to %s.", label)
		}
		return nil
	}
}

// NotEqualTo fails when the value matches the other named field. Used to
// keep the installed drive distinct from the removed one.
func NotEqualTo(other, label string) Validator {
	return func(value string, all url.Values) error {
		if value != "" && value == all.Get(other) {
			return fmt.Errorf("Field must differ from %s.", label)
		}
		return nil
	}
}

func DateFormat() Validator {
	return func(value string, _ url.Values) error {
		if value == "" {
			return nil
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return errors.New("Invalid date, expected YYYY-MM-DD.")
		}
		return nil
	}
}

func TimeFormat() Validator {
	return func(value string, _ url.Values) error {
		if value == "" {
			return nil
		}
		if _, err := time.Parse("15:04", value); err != nil {
			return errors.New("Invalid time, expected HH:MM.")
		}
		return nil
	}
}
