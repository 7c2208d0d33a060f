package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// emailPattern is the RFC 5322 style address pattern bookings are checked against.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so messages match the request parts.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("rfc5322", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsValidEmail reports whether email matches the accepted address pattern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	return NewValidationError(fe.Field(), fieldMessage(fe))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "rfc5322":
		return "Please provide a valid email address"
	default:
		return fmt.Sprintf("%s failed on the %q rule", fe.Field(), fe.Tag())
	}
}

// ParseTags decodes the tags form value, which must be a JSON array of strings.
func ParseTags(raw string) ([]string, error) {
	if err := checkJSONField("tags", raw); err != nil {
		return nil, err
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil || tags == nil {
		return nil, NewValidationError("tags", "tags must be a JSON array of strings")
	}
	return tags, nil
}

// ParseAgenda decodes the agenda form value, which must be a JSON array. Entries are kept
// verbatim so they round-trip unchanged.
func ParseAgenda(raw string) ([]json.RawMessage, error) {
	if err := checkJSONField("agenda", raw); err != nil {
		return nil, err
	}
	var agenda []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &agenda); err != nil || agenda == nil {
		return nil, NewValidationError("agenda", "agenda must be a JSON array")
	}
	return agenda, nil
}

func checkJSONField(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return NewValidationError(field, field+" is required")
	}
	if !json.Valid([]byte(raw)) {
		return NewValidationError(field, field+" must be valid JSON")
	}
	return nil
}

// EventNotFoundError is the validation failure raised when a booking references an event
// that is not stored.
func EventNotFoundError(id string) error {
	return &ValidationError{
		Field:   "eventId",
		Message: fmt.Sprintf("Event with ID %s does not exist", id),
		Err:     ErrEventNotFound,
	}
}

// ValidateEventExists looks the event up by id and fails with EventNotFoundError when it is
// missing. Ids that are not UUIDs cannot match a stored event and fail without a lookup.
func ValidateEventExists(ctx context.Context, events EventExistenceChecker, id string) error {
	if _, err := uuid.Parse(id); err != nil || len(id) != 36 {
		return EventNotFoundError(id)
	}
	ok, err := events.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check event exists: %w", err)
	}
	if !ok {
		return EventNotFoundError(id)
	}
	return nil
}
