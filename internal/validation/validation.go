package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldError is a single field-level violation reported to the client
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// timePattern matches 24-hour HH:MM strings, e.g. "09:30" or "23:59"
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations against the JSON field names the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})

	// datereq: the date must be present and parseable
	v.RegisterValidation("datereq", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(Date)
		return ok && d.Set && d.Valid
	})

	// dateopt: the date may be absent, but must parse when present
	v.RegisterValidation("dateopt", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(Date)
		return ok && (!d.Set || d.Valid)
	})

	v.RegisterStructValidation(reminderCreateStructLevel, ReminderCreateInput{})
	v.RegisterStructValidation(reminderUpdateStructLevel, ReminderUpdateInput{})

	return v
}

// Validate checks an input struct and returns the list of field-level
// violations, or nil when the input is valid.
func Validate(input interface{}) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: message(fe)})
	}
	return out
}

// fieldPath strips the leading struct name from the error namespace, so
// "TaskCreateInput.title" reports as "title" and nested entries keep
// their path ("participants[0].name").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "datereq":
		return fmt.Sprintf("Valid %s is required", fe.Field())
	case "dateopt":
		return fmt.Sprintf("Invalid %s format", fe.Field())
	case "oneof":
		return fmt.Sprintf("Invalid %s", fe.Field())
	case "hhmm":
		return "Invalid time format (HH:MM)"
	case "objectid":
		return fmt.Sprintf("Invalid %s id", fe.Field())
	case "email":
		return fmt.Sprintf("Invalid %s", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be a positive number", fe.Field())
	case "requiredwith":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("Invalid %s", fe.Field())
	}
}

func reminderCreateStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(ReminderCreateInput)
	if in.IsRecurring && in.RecurringType == "" {
		sl.ReportError(in.RecurringType, "recurringType", "RecurringType", "required", "")
	}
}

func reminderUpdateStructLevel(sl validator.StructLevel) {
	in := sl.Current().Interface().(ReminderUpdateInput)
	if in.IsRecurring != nil && *in.IsRecurring {
		if in.RecurringType == nil || *in.RecurringType == "" {
			sl.ReportError(in.RecurringType, "recurringType", "RecurringType", "required", "")
		}
	}
}
