// Package forms implements the declarative form layer: each form is a plain
// slice of field definitions interpreted by a generic Validate. Handlers
// build the form, feed it the posted values, and re-render with the returned
// field errors on failure.
package forms

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Field types. Choice fields additionally check membership in Choices.
const (
	Text     = "text"
	Password = "password"
	Date     = "date"
	Time     = "time"
	Choice   = "choice"
	Boolean  = "boolean"
	TextArea = "textarea"
)

type Option struct {
	Value string
	Label string
}

type Field struct {
	Name       string
	Label      string
	Type       string
	Choices    []Option // choice fields only, loaded from the database at render time
	Validators []Validator
}

type Form struct {
	Name   string
	Fields []Field
}

// Errors maps field name to the first failed validation message.
type Errors map[string]string

// Validate checks every field against its validators in order, recording the
// first failure per field. Boolean fields are normalized to "true" or "".
// Choice fields with a submitted value must match one of the field's Choices.
func (f *Form) Validate(values url.Values) (map[string]string, Errors) {
	cleaned := make(map[string]string, len(f.Fields))
	errs := Errors{}

	for _, field := range f.Fields {
		raw := strings.TrimSpace(values.Get(field.Name))

		if field.Type == Boolean {
			if raw == "on" || raw == "true" || raw == "1" {
				cleaned[field.Name] = "true"
			} else {
				cleaned[field.Name] = ""
			}
			continue
		}

		cleaned[field.Name] = raw

		for _, validate := range field.Validators {
			if err := validate(raw, values); err != nil {
				errs[field.Name] = err.Error()
				break
			}
		}
		if _, failed := errs[field.Name]; failed {
			continue
		}

		if field.Type == Choice && raw != "" && !hasOption(field.Choices, raw) {
			errs[field.Name] = "Not a valid choice."
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return cleaned, nil
}

// PostedValues extracts this form's fields from a request body into
// url.Values for Validate.
func (f *Form) PostedValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	for _, field := range f.Fields {
		values.Set(field.Name, c.FormValue(field.Name))
	}
	return values
}

func hasOption(choices []Option, value string) bool {
	for _, c := range choices {
		if c.Value == value {
			return true
		}
	}
	return false
}
